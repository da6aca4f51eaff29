// Package github implements a lookup search backend over GitHub repository search.
//
// Each repository becomes a candidate: the full name is the title and the
// description the subtitle. Calls are throttled proactively with a token bucket
// and reactively from the X-RateLimit headers GitHub returns.
package github
