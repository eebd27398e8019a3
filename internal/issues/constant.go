package issues

// DefaultLimit caps each GitHub listing when no limit is configured.
const DefaultLimit = 50
