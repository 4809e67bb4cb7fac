package scenario

import (
	"fmt"
	"reflect"
	"slices"

	"go.uber.org/zap"

	"github.com/wippyai/vk-validation/diag"
	"github.com/wippyai/vk-validation/errors"
	"github.com/wippyai/vk-validation/layer"
	"github.com/wippyai/vk-validation/nulldriver"
	"github.com/wippyai/vk-validation/vk"
)

// StepResult is the outcome of one step.
type StepResult struct {
	Index   int
	Step    Step
	Result  vk.Result
	Reports []diag.Report
	// Err is set when the step could not run or its expectation was not met.
	Err error
}

// Passed reports whether the step met its expectation.
func (r StepResult) Passed() bool { return r.Err == nil }

// Result is the outcome of a whole script.
type Result struct {
	Name  string
	Steps []StepResult
}

// Failed returns the steps that did not pass.
func (r Result) Failed() []StepResult {
	var out []StepResult
	for _, s := range r.Steps {
		if !s.Passed() {
			out = append(out, s)
		}
	}
	return out
}

// Option configures a Runner.
type Option func(*Runner)

// WithSettings replaces the layer settings the script's own settings are
// applied on top of.
func WithSettings(s layer.Settings) Option {
	return func(r *Runner) { r.settings = s }
}

// WithLogger sets the logger handed to the layer and the null driver.
func WithLogger(log *zap.Logger) Option {
	return func(r *Runner) { r.log = log }
}

// WithSink adds a sink that sees every report alongside the runner's own
// recorder.
func WithSink(s diag.Sink) Option {
	return func(r *Runner) { r.sink = s }
}

// Runner executes a script one step at a time.
type Runner struct {
	script   *Script
	settings layer.Settings
	log      *zap.Logger
	sink     diag.Sink

	drv      *nulldriver.Driver
	l        *layer.Layer
	rec      *diag.Recorder
	names    map[string]any
	messages []string
	next     int
	ready    bool
	results  []StepResult
}

// NewRunner prepares a runner for s. Nothing is created until the first
// step runs.
func NewRunner(s *Script, opts ...Option) *Runner {
	r := &Runner{
		script:   s,
		settings: layer.DefaultSettings(),
		log:      Logger(),
		rec:      &diag.Recorder{},
		names:    make(map[string]any),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Script returns the script being run.
func (r *Runner) Script() *Script { return r.script }

// Layer returns the layer under test, or nil before the first step.
func (r *Runner) Layer() *layer.Layer { return r.l }

// Driver returns the null driver, or nil before the first step.
func (r *Runner) Driver() *nulldriver.Driver { return r.drv }

// Messages returns what the script's debug callbacks received.
func (r *Runner) Messages() []string { return slices.Clone(r.messages) }

// Results returns the steps run so far.
func (r *Runner) Results() []StepResult { return slices.Clone(r.results) }

// Done reports whether every step has run.
func (r *Runner) Done() bool { return r.next >= len(r.script.Steps) }

// Setup creates the physical device, the layer and the instance the script
// starts with. Step calls it when needed.
func (r *Runner) Setup() error {
	if r.ready {
		return nil
	}
	pd := nulldriver.DefaultPhysicalDevice()
	if fams := r.script.Physical.QueueFamilies; len(fams) > 0 {
		pd.QueueFamilies = make([]vk.QueueFamilyProperties, len(fams))
		for i, f := range fams {
			pd.QueueFamilies[i] = vk.QueueFamilyProperties{QueueFlags: f.Flags, QueueCount: f.Count}
		}
	}
	for _, name := range r.script.Physical.Unsupported {
		if err := setFeature(&pd.Features, name, false); err != nil {
			return fmt.Errorf("physical: %w", err)
		}
	}

	settings := r.settings
	if s := r.script.Settings.BlockOn; s != nil {
		settings.BlockOn = *s
	}
	if s := r.script.Settings.ReportFlags; s != nil {
		settings.ReportFlags = *s
	}

	r.drv = nulldriver.New(nulldriver.WithPhysicalDevices(pd), nulldriver.WithLogger(r.log))
	r.l = layer.New(r.drv,
		layer.WithSettings(settings),
		layer.WithSink(diag.Multi(r.rec, r.sink)),
		layer.WithLogger(r.log),
	)

	var inst vk.Instance
	res := r.l.CreateInstance(&vk.InstanceCreateInfo{
		SType: vk.StructureTypeInstanceCreateInfo,
		ApplicationInfo: &vk.ApplicationInfo{
			SType:           vk.StructureTypeApplicationInfo,
			ApplicationName: r.script.Instance.Application,
			APIVersion:      vk.APIVersion10,
		},
		EnabledExtensionCount: uint32(len(r.script.Instance.Extensions)),
		EnabledExtensionNames: r.script.Instance.Extensions,
	}, &inst)
	if res != vk.Success {
		return fmt.Errorf("create instance: %s: %v", res, r.rec.Reports())
	}
	count := uint32(1)
	pds := make([]vk.PhysicalDevice, 1)
	if res := r.l.EnumeratePhysicalDevices(inst, &count, pds); res != vk.Success {
		return fmt.Errorf("enumerate physical devices: %s", res)
	}
	r.names["instance"] = inst
	r.names["physical"] = pds[0]
	r.rec.Reset()
	r.ready = true
	return nil
}

// Step runs the next step. It returns false once every step has run.
func (r *Runner) Step() (StepResult, bool) {
	if r.Done() {
		return StepResult{}, false
	}
	i := r.next
	r.next++
	st := r.script.Steps[i]
	out := StepResult{Index: i, Step: st}

	if err := r.Setup(); err != nil {
		out.Err = err
		r.results = append(r.results, out)
		return out, true
	}

	r.rec.Reset()
	res, created, err := r.call(st)
	out.Result = res
	out.Reports = r.rec.Reports()
	if err != nil {
		out.Err = err
	} else {
		out.Err = check(st, res, out.Reports)
	}
	if out.Err == nil && st.As != "" {
		r.names[st.As] = created
	}

	r.log.Debug("scenario step",
		zap.String("script", r.script.Name),
		zap.Int("step", i+1),
		zap.String("op", st.Op),
		zap.Stringer("result", res),
		zap.Int("reports", len(out.Reports)),
		zap.Bool("passed", out.Err == nil))
	r.results = append(r.results, out)
	return out, true
}

// Run executes the remaining steps and tears the instance down.
func (r *Runner) Run() Result {
	for {
		if _, ok := r.Step(); !ok {
			break
		}
	}
	r.Close()
	return Result{Name: r.script.Name, Steps: r.Results()}
}

// Close destroys the script's instance if it is still alive.
func (r *Runner) Close() {
	if !r.ready {
		return
	}
	if inst, ok := r.names["instance"].(vk.Instance); ok && !inst.IsNull() {
		r.l.DestroyInstance(inst)
		r.names["instance"] = vk.Instance{}
	}
}

func (r *Runner) call(st Step) (res vk.Result, created any, err error) {
	fn := ops[st.Op]
	defer func() {
		// a stale or foreign handle makes the layer panic with an internal error
		if v := recover(); v != nil {
			e, ok := v.(*errors.Error)
			if !ok {
				panic(v)
			}
			err = e
		}
	}()
	return fn(r, &st.Args)
}

func check(st Step, res vk.Result, reports []diag.Report) error {
	blocked, want, err := parseExpect(st.expect())
	if err != nil {
		return err
	}
	switch {
	case blocked && res != vk.ErrorValidationFailedEXT:
		return fmt.Errorf("expected the call to be blocked, got %s", res)
	case !blocked && res != want:
		return fmt.Errorf("expected %s, got %s%s", want, res, firstReport(reports))
	}
	for _, code := range st.Reports {
		if !slices.ContainsFunc(reports, func(rep diag.Report) bool { return rep.Code == code }) {
			return fmt.Errorf("expected a %s report%s", code, firstReport(reports))
		}
	}
	return nil
}

func firstReport(reports []diag.Report) string {
	if len(reports) == 0 {
		return ""
	}
	return fmt.Sprintf(" (first report: %s)", reports[0].Message)
}

// lookup resolves a $name argument. An empty reference or "null" yields the
// zero handle.
func lookup[T any](r *Runner, ref string) (T, error) {
	var zero T
	if ref == "" || ref == "null" {
		return zero, nil
	}
	if ref[0] != '$' {
		return zero, fmt.Errorf("handle reference %q must start with $", ref)
	}
	v, ok := r.names[ref[1:]]
	if !ok {
		return zero, fmt.Errorf("%s is not defined", ref)
	}
	h, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%s is a %T, not a %T", ref, v, zero)
	}
	return h, nil
}

// setFeature sets the feature with the given API name.
func setFeature(f *vk.PhysicalDeviceFeatures, name string, on bool) error {
	v := reflect.ValueOf(f).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if vk.FeatureName(t.Field(i)) == name {
			v.Field(i).SetUint(uint64(vk.B(on)))
			return nil
		}
	}
	return fmt.Errorf("unknown feature %q", name)
}
