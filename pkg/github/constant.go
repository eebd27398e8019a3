package github

import "time"

const (
	// DefaultBaseURL is the public GitHub REST API
	DefaultBaseURL = "https://api.github.com"

	// DefaultTimeout bounds a single API call
	DefaultTimeout = 15 * time.Second

	// maxPerPage is the API's page size ceiling
	maxPerPage = 100

	apiVersion = "2022-11-28"
)
