// Package datapulse holds project-wide constants.
package datapulse

// Version is the DataPulse release version.
const Version = "0.1.0"
