// Package store provides persistence for local preferences.
//
// PreferenceFileStore keeps a flat string map as JSON under the configured
// home directory; writes go through a temp file and a rename so a crash never
// leaves a truncated file. MemoryStore keeps the same map in memory for tests
// and throwaway runs. Both are safe for concurrent use.
package store
