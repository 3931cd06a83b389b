// Package sensors demonstrates basic function mocking: an unexported
// original function, a generated shim, and tests that intercept it.
package sensors

//go:generate go run github.com/toejough/mockfn/shimgen readSensor --namespace sensors

// readSensor is the original behavior: in production it would talk to
// hardware. Call sites use the generated ReadSensor wrapper instead.
func readSensor() int {
	return 21
}

// CurrentTemperature reports the sensor reading with a calibration offset.
// It calls through the shim, so tests can replace the sensor.
func CurrentTemperature() int {
	return ReadSensor() + 2
}
