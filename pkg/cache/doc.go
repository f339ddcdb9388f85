// Package cache provides a generic, thread-safe LRU cache.
//
// The validator package uses it to keep compiled regular expressions for
// string patterns declared in rules files:
//
//	patterns := cache.NewLRU[string, *regexp.Regexp](256)
//	re, err := patterns.GetOrLoad(pattern, func() (*regexp.Regexp, error) {
//	    return regexp.Compile(pattern)
//	})
package cache
