// Package types defines the Bundle and DebugLog interfaces, asset tokens,
// handle types, and standard errors for the assetman resolution system.
package types
