package scenario_test

import (
	stderrors "errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/wippyai/vk-validation/diag"
	"github.com/wippyai/vk-validation/errors"
	"github.com/wippyai/vk-validation/scenario"
	"github.com/wippyai/vk-validation/vk"
)

func TestScripts(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			s, err := scenario.Load(path)
			require.NoError(t, err)

			res := scenario.NewRunner(s, scenario.WithLogger(zaptest.NewLogger(t))).Run()
			assert.Len(t, res.Steps, len(s.Steps))
			for _, f := range res.Failed() {
				t.Errorf("step %d (%s): %v", f.Index+1, f.Step, f.Err)
			}
		})
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"unknown op", "steps: [{op: cmdTeleport}]", "unknown op"},
		{"undefined ref", "steps: [{op: destroyDevice, args: {device: $gpu}}]", "$gpu"},
		{"bad expect", "steps: [{op: clearFaults, expect: maybe}]", "expect"},
		{"bad code", "steps: [{op: clearFaults, reports: [LOUD]}]", "LOUD"},
		{"unknown field", "steps: [{op: clearFaults, when: later}]", "when"},
		{"bad severity", "settings: {block_on: loud}", "loud"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scenario.Parse([]byte(tt.text))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseBindsNamesInOrder(t *testing.T) {
	_, err := scenario.Parse([]byte(`
steps:
  - op: destroyDevice
    args: {device: $device}
  - op: createDevice
    as: device
`))
	require.Error(t, err, "a name is only usable after the step that binds it")

	s, err := scenario.Parse([]byte(`
steps:
  - op: createDevice
    as: device
    args: {queues: [{family: 0, count: 1}]}
  - op: destroyDevice
    args: {device: $device}
`))
	require.NoError(t, err)
	assert.Equal(t, "createDevice as $device", s.Steps[0].String())
}

func TestStepByStep(t *testing.T) {
	s, err := scenario.Parse([]byte(`
name: stepping
steps:
  - op: createDevice
    as: device
    args: {queues: [{family: 0, count: 1}]}
  - op: getDeviceQueue
    args: {device: $device, family: 0, index: 9}
  - op: getDeviceQueue
    args: {device: $device, family: 0, index: 9}
    expect: blocked
`))
	require.NoError(t, err)

	r := scenario.NewRunner(s)
	assert.Nil(t, r.Layer(), "nothing exists before the first step")

	first, ok := r.Step()
	require.True(t, ok)
	assert.True(t, first.Passed(), "%v", first.Err)
	assert.Equal(t, vk.Success, first.Result)
	assert.NotNil(t, r.Layer())

	second, ok := r.Step()
	require.True(t, ok)
	assert.False(t, second.Passed(), "the step expected success")
	assert.Equal(t, vk.ErrorValidationFailedEXT, second.Result)
	require.NotEmpty(t, second.Reports)
	assert.Equal(t, errors.CodeInvalidUsage, second.Reports[0].Code)

	third, ok := r.Step()
	require.True(t, ok)
	assert.True(t, third.Passed(), "%v", third.Err)
	assert.True(t, r.Done())

	_, ok = r.Step()
	assert.False(t, ok)

	r.Close()
	assert.Equal(t, 0, r.Layer().State().Sessions())
	assert.Len(t, r.Results(), 3)
}

func TestReportsMustAppear(t *testing.T) {
	s, err := scenario.Parse([]byte(`
steps:
  - op: createDevice
    as: device
    args: {queues: [{family: 0, count: 1}]}
  - op: createBuffer
    args: {device: $device}
    reports: [DEVICE_LIMIT]
`))
	require.NoError(t, err)

	res := scenario.NewRunner(s).Run()
	failed := res.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, 1, failed[0].Index)
	assert.ErrorContains(t, failed[0].Err, "DEVICE_LIMIT")
}

func TestCallbacksSeeReports(t *testing.T) {
	s, err := scenario.Load(filepath.Join("testdata", "reporting.yaml"))
	require.NoError(t, err)

	var seen []diag.Report
	r := scenario.NewRunner(s, scenario.WithSink(diag.SinkFunc(func(rep diag.Report) bool {
		seen = append(seen, rep)
		return false
	})))
	res := r.Run()
	require.Empty(t, res.Failed())

	msgs := r.Messages()
	require.Len(t, msgs, 1, "the callback is destroyed after one blocked draw")
	assert.True(t, strings.HasPrefix(msgs[0], diag.LayerPrefix+": "))
	assert.NotEmpty(t, seen)
}

func TestStaleHandleIsInternalError(t *testing.T) {
	s, err := scenario.Parse([]byte(`
steps:
  - op: createDevice
    as: device
    args: {queues: [{family: 0, count: 1}]}
  - op: destroyDevice
    args: {device: $device}
  - op: createBuffer
    args: {device: $device}
`))
	require.NoError(t, err)

	res := scenario.NewRunner(s).Run()
	failed := res.Failed()
	require.Len(t, failed, 1)

	var e *errors.Error
	require.True(t, stderrors.As(failed[0].Err, &e))
	assert.Equal(t, errors.CategoryInternal, e.Category)
	assert.Equal(t, "vkCreateBuffer", e.Op)
}

func TestSetupErrors(t *testing.T) {
	s, err := scenario.Parse([]byte(`
physical:
  unsupported_features: [teleportation]
steps:
  - op: clearFaults
`))
	require.NoError(t, err)

	res := scenario.NewRunner(s).Run()
	require.Len(t, res.Failed(), 1)
	assert.ErrorContains(t, res.Steps[0].Err, "teleportation")
}

func TestOpsSorted(t *testing.T) {
	ops := scenario.Ops()
	assert.IsIncreasing(t, ops)
	assert.Contains(t, ops, "createGraphicsPipeline")
	assert.Contains(t, ops, "settings")
}
