package analyze

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/fraudlens/internal/predict"
	"github.com/abhisek/fraudlens/internal/preset"
	"github.com/abhisek/fraudlens/internal/presenter"
	"github.com/abhisek/fraudlens/internal/router"
	"github.com/abhisek/fraudlens/internal/screen"
	"github.com/abhisek/fraudlens/internal/screens/presets"
	"github.com/abhisek/fraudlens/internal/transaction"
	"github.com/abhisek/fraudlens/internal/ui/components"
	"github.com/abhisek/fraudlens/internal/ui/layout"
)

const spinnerInterval = 100 * time.Millisecond

// Field indices into AnalyzeScreen.fields.
const (
	fieldAmount = iota
	fieldTime
	fieldFirstFeature
)

// basicFieldCount is the number of fields visible with the feature grid
// collapsed.
const basicFieldCount = fieldFirstFeature

// AnalyzeScreen collects a transaction, submits it and shows the verdict.
type AnalyzeScreen struct {
	predictor predict.Predictor
	prefix    string
	presenter *presenter.Presenter
	fields    []components.TextInput
	focus     int
	advanced  bool
	formErr   string
	submitted transaction.Input
	started   time.Time
	frame     int
	now       func() time.Time
}

var _ screen.Screen = (*AnalyzeScreen)(nil)
var _ screen.KeyHintProvider = (*AnalyzeScreen)(nil)

// New creates an AnalyzeScreen that submits through p. featurePrefix labels
// the feature fields the way the service names them; empty means the default.
func New(p predict.Predictor, featurePrefix string) *AnalyzeScreen {
	if featurePrefix == "" {
		featurePrefix = transaction.DefaultFeaturePrefix
	}

	fields := make([]components.TextInput, 0, transaction.FieldCount)
	fields = append(fields,
		components.NewTextInput("Amount ($)", "e.g. 149.62", true, 16),
		components.NewTextInput("Time (seconds)", "e.g. 3600", true, 16),
	)
	for i := 0; i < transaction.FeatureCount; i++ {
		name := transaction.FeatureName(featurePrefix, i)
		fields = append(fields, components.NewTextInput(name, "0", true, 8))
	}

	return &AnalyzeScreen{
		predictor: p,
		prefix:    featurePrefix,
		presenter: presenter.New(),
		fields:    fields,
		now:       time.Now,
	}
}

func (s *AnalyzeScreen) Init() tea.Cmd {
	return s.fields[s.focus].Focus()
}

func (s *AnalyzeScreen) Title() string {
	return "Analyze Transaction"
}

func (s *AnalyzeScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Analyze"},
		{Key: "Tab", Description: "Next field"},
		{Key: "Ctrl+P", Description: "Examples"},
	}
	if s.advanced {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+A", Description: "Hide features"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+A", Description: "Features"})
	}
	if _, idle := s.presenter.State().(presenter.Idle); !idle {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+R", Description: "Reset"})
	}
	return append(hints,
		layout.KeyHint{Key: "Ctrl+X", Description: "Clear"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
}

// Close abandons any request in flight.
func (s *AnalyzeScreen) Close() {
	s.presenter.Close()
}

func (s *AnalyzeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case predictionDoneMsg:
		s.presenter.Resolve(msg.Generation, msg.Result, msg.Err)
		return s, nil

	case spinnerTickMsg:
		return s, s.handleSpinnerTick(msg)

	case presets.SelectedMsg:
		return s, s.applyPreset(msg.Name)

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	var cmd tea.Cmd
	s.fields[s.focus], cmd = s.fields[s.focus].Update(msg)
	return s, cmd
}

func (s *AnalyzeScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return s, s.submit()
	case "tab", "down":
		return s, s.moveFocus(1)
	case "shift+tab", "up":
		return s, s.moveFocus(-1)
	case "ctrl+a":
		return s, s.toggleAdvanced()
	case "ctrl+p":
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: presets.New(s.prefix)}
		}
	case "alt+1", "alt+2", "alt+3":
		names := preset.Names()
		idx := int(msg.String()[len("alt+")] - '1')
		if idx < len(names) {
			return s, s.applyPreset(names[idx])
		}
		return s, nil
	case "ctrl+r":
		s.presenter.Reset()
		return s, nil
	case "ctrl+x":
		s.clearForm()
		s.presenter.Reset()
		return s, s.setFocus(fieldAmount)
	}

	var cmd tea.Cmd
	s.fields[s.focus], cmd = s.fields[s.focus].Update(msg)
	return s, cmd
}

// visibleFields returns how many fields take part in the focus ring.
func (s *AnalyzeScreen) visibleFields() int {
	if s.advanced {
		return len(s.fields)
	}
	return basicFieldCount
}

func (s *AnalyzeScreen) moveFocus(delta int) tea.Cmd {
	n := s.visibleFields()
	return s.setFocus(((s.focus+delta)%n + n) % n)
}

func (s *AnalyzeScreen) setFocus(i int) tea.Cmd {
	s.fields[s.focus].Blur()
	s.focus = i
	return s.fields[s.focus].Focus()
}

func (s *AnalyzeScreen) toggleAdvanced() tea.Cmd {
	s.advanced = !s.advanced
	if !s.advanced && s.focus >= basicFieldCount {
		return s.setFocus(fieldAmount)
	}
	return nil
}

// raw reads the form into builder input.
func (s *AnalyzeScreen) raw() transaction.Raw {
	raw := transaction.Raw{
		Amount: s.fields[fieldAmount].Value(),
		Time:   s.fields[fieldTime].Value(),
	}
	for i := range raw.Features {
		raw.Features[i] = s.fields[fieldFirstFeature+i].Value()
	}
	return raw
}

func (s *AnalyzeScreen) setRaw(raw transaction.Raw) {
	s.fields[fieldAmount].SetValue(raw.Amount)
	s.fields[fieldTime].SetValue(raw.Time)
	for i, v := range raw.Features {
		s.fields[fieldFirstFeature+i].SetValue(v)
	}
	s.formErr = ""
}

func (s *AnalyzeScreen) clearForm() {
	s.setRaw(transaction.Raw{})
}

// applyPreset loads a preset into the form. Unknown names leave the form
// and the result untouched.
func (s *AnalyzeScreen) applyPreset(name string) tea.Cmd {
	in, ok := preset.Lookup(name)
	if !ok {
		return nil
	}
	c := transaction.Build(s.raw(), &in)
	valid, err := transaction.Validate(c)
	if err != nil {
		return nil
	}
	s.setRaw(transaction.RawFromInput(valid))
	s.presenter.Reset()
	return nil
}

// submit validates the form and starts a prediction. Validation failures
// are shown inline and never reach the network.
func (s *AnalyzeScreen) submit() tea.Cmd {
	in, err := transaction.Validate(transaction.Build(s.raw(), nil))
	if err != nil {
		s.showValidationError(err)
		return nil
	}
	s.clearErrors()

	ctx, cancel := context.WithCancel(context.Background())
	gen := s.presenter.Begin(cancel)
	s.submitted = in
	s.started = s.now()
	s.frame = 0

	return tea.Batch(s.predictCmd(ctx, gen, in), spinnerTick(gen))
}

func (s *AnalyzeScreen) predictCmd(ctx context.Context, gen uint64, in transaction.Input) tea.Cmd {
	p := s.predictor
	return func() tea.Msg {
		result, err := p.Predict(ctx, in)
		return predictionDoneMsg{Generation: gen, Result: result, Err: err}
	}
}

func spinnerTick(gen uint64) tea.Cmd {
	return tea.Tick(spinnerInterval, func(time.Time) tea.Msg {
		return spinnerTickMsg{Generation: gen}
	})
}

// handleSpinnerTick keeps one tick chain alive per loading generation.
func (s *AnalyzeScreen) handleSpinnerTick(msg spinnerTickMsg) tea.Cmd {
	loading, ok := s.presenter.State().(presenter.Loading)
	if !ok || loading.Generation != msg.Generation {
		return nil
	}
	s.frame++
	return spinnerTick(msg.Generation)
}

func (s *AnalyzeScreen) showValidationError(err error) {
	s.clearErrors()

	var ve *transaction.ValidationError
	if errors.As(err, &ve) {
		switch ve.Field {
		case "Amount":
			s.fields[fieldAmount].Err = ve.Error()
			return
		case "Time":
			s.fields[fieldTime].Err = ve.Error()
			return
		}
	}
	s.formErr = err.Error()
}

func (s *AnalyzeScreen) clearErrors() {
	s.formErr = ""
	for i := range s.fields {
		s.fields[i].Err = ""
	}
}
