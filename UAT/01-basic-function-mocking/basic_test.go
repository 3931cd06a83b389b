package sensors_test

import (
	"testing"

	. "github.com/onsi/gomega" //nolint:revive
	"github.com/toejough/mockfn"
	sensors "github.com/toejough/mockfn/UAT/01-basic-function-mocking"
)

// TestMockedSensorDrivesCalculation verifies an enabled mock feeds the
// calculation that calls through the shim, and that every read lands in the
// recorder.
func TestMockedSensorDrivesCalculation(t *testing.T) {
	g := NewWithT(t)

	sensor := mockfn.NewMock("sensors", "readSensor", func(...any) any { return 100 })
	t.Cleanup(sensor.Disable)
	g.Expect(sensor.Enable()).To(Succeed())

	g.Expect(sensors.CurrentTemperature()).To(Equal(102))
	g.Expect(sensors.CurrentTemperature()).To(Equal(102))

	g.Expect(sensor.Recorder().CallCount()).To(Equal(2))
}

// TestDisabledMockFallsThroughToHardwarePath verifies original behavior is
// back the moment the mock is disabled, with history intact.
func TestDisabledMockFallsThroughToHardwarePath(t *testing.T) {
	g := NewWithT(t)

	sensor := mockfn.NewMock("sensors", "readSensor", func(...any) any { return -40 })
	t.Cleanup(sensor.Disable)
	g.Expect(sensor.Enable()).To(Succeed())

	g.Expect(sensors.CurrentTemperature()).To(Equal(-38))

	sensor.Disable()

	g.Expect(sensors.CurrentTemperature()).To(Equal(23), "the real sensor reads 21")
	g.Expect(sensor.Recorder().CallCount()).To(Equal(1),
		"the fall-through call is not recorded")
}

// TestSecondMockForSameSensorIsRejected verifies the single-active-mock
// invariant from the caller's point of view.
func TestSecondMockForSameSensorIsRejected(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	first := mockfn.NewMock("sensors", "readSensor2", func(...any) any { return 1 })
	second := mockfn.NewMock("Sensors", "ReadSensor2", func(...any) any { return 2 })
	t.Cleanup(first.Disable)

	g.Expect(first.Enable()).To(Succeed())
	g.Expect(second.Enable()).To(BeAssignableToTypeOf(&mockfn.AlreadyEnabledError{}))
}
