package calendar

// MaxEvents caps the events returned for one day.
const MaxEvents = 50
