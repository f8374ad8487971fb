// Package navigation holds the value types shared between the scan pipeline
// and the navigation/state-reporting layer: timestamped waypoints used to
// build trajectories and the navigation status reported to telemetry.
//
// The types carry no navigation logic.
package navigation
