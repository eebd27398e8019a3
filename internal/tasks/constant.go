package tasks

// DefaultPriority is assigned to a task whose notes carry none.
const DefaultPriority = "medium"

// MaxListed caps one Tasks API read.
const MaxListed = 100
