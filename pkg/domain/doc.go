// Package domain contains the core domain entities and types used by the
// application: enriched domain records, pipeline runs and their trigger
// events. These types are intentionally free of infrastructure concerns so
// they can be shared across packages.
package domain
