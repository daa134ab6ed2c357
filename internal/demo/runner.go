package demo

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tortugaresearch/anchor"
	"github.com/tortugaresearch/anchor/internal/config"
	"github.com/tortugaresearch/anchor/internal/production"
	"github.com/tortugaresearch/anchor/metadata"
	"github.com/tortugaresearch/anchor/propbag"
)

// Runner applies scenario steps to a demo model, logging every notification
// the model raises and printing its state on request.
type Runner struct {
	log zerolog.Logger
	out io.Writer

	model Assignable
	order *Order
	unsub []func()
	pub   *production.ChannelPublisher
}

// NewRunner creates a runner writing reports to out.
func NewRunner(log zerolog.Logger, out io.Writer) *Runner {
	return &Runner{log: log, out: out}
}

// PublishTo makes later runs forward the model's property changes to p.
func (r *Runner) PublishTo(p *production.ChannelPublisher) { r.pub = p }

// Run builds the scenario's model and applies every step in order. It stops
// at the first failing step.
func (r *Runner) Run(sc config.Scenario) error {
	if err := sc.Validate(); err != nil {
		return err
	}
	defer r.close()
	if err := r.build(sc.Model); err != nil {
		return err
	}
	for i, st := range sc.Steps {
		if err := r.apply(st); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, st.Op, err)
		}
	}
	r.log.Info().
		Str("model", sc.Model).
		Int("steps", len(sc.Steps)).
		Bool("changed", r.changeable().IsChanged()).
		Msg("scenario finished")
	return nil
}

// Model returns the model built by the last Run.
func (r *Runner) Model() Assignable { return r.model }

func (r *Runner) build(model string) error {
	switch model {
	case config.ModelPerson:
		r.model = NewPerson()
	case config.ModelOrder:
		r.order = NewOrder()
		r.model = r.order
		lines := r.order.Lines()
		unsub, err := lines.CollectionChangedEvent().Subscribe(func(_ any, args anchor.CollectionChangedArgs[*Line]) {
			r.log.Info().Str("action", args.Action.String()).Int("index", args.Index).Msg("lines changed")
		})
		if err != nil {
			return err
		}
		r.unsub = append(r.unsub, unsub)
	default:
		return fmt.Errorf("unknown model %q", model)
	}
	if r.pub != nil {
		if n, ok := r.model.(propbag.WeakNotifier); ok {
			if err := r.pub.Watch(model, n); err != nil {
				return err
			}
		}
	}
	return r.watch(model, r.model)
}

func (r *Runner) watch(name string, m anchor.Backed) error {
	unsub, err := m.Properties().PropertyChanged().Subscribe(func(_ any, args propbag.PropertyChangedArgs) {
		r.log.Info().Str("model", name).Str("property", args.Name).Msg("property changed")
	})
	if err != nil {
		return err
	}
	r.unsub = append(r.unsub, unsub)
	return nil
}

func (r *Runner) close() {
	for _, u := range r.unsub {
		u()
	}
	r.unsub = nil
}

// changeable is the change-tracking surface every demo model has.
func (r *Runner) changeable() propbag.Revertible {
	return r.model.(propbag.Revertible)
}

func (r *Runner) apply(st config.Step) error {
	switch st.Op {
	case config.OpSet:
		return r.model.Assign(st.Property, st.Value)
	case config.OpAccept:
		if st.Recursive {
			r.changeable().AcceptChanges()
			return nil
		}
		r.model.Properties().AcceptChanges(false)
		return nil
	case config.OpReject:
		if st.Recursive {
			r.changeable().RejectChanges()
			return nil
		}
		return r.model.Properties().RejectChanges(false)
	case config.OpAddLine:
		product, ok := st.Value.(string)
		if !ok {
			return fmt.Errorf("product must be a string, got %T", st.Value)
		}
		l := r.order.AddLine(product, 1, 0)
		r.log.Debug().Stringer("id", l.ID()).Str("product", product).Msg("line added")
		return nil
	case config.OpSetLine:
		l, err := r.line(st.Line)
		if err != nil {
			return err
		}
		return l.Assign(st.Property, st.Value)
	case config.OpRemoveLine:
		if _, err := r.line(st.Line); err != nil {
			return err
		}
		r.order.Lines().RemoveAt(st.Line)
		return nil
	case config.OpPrint:
		r.print()
		return nil
	}
	return fmt.Errorf("unknown op %q", st.Op)
}

func (r *Runner) line(i int) (*Line, error) {
	if r.order == nil {
		return nil, fmt.Errorf("no order model")
	}
	if i < 0 || i >= r.order.Lines().Len() {
		return nil, fmt.Errorf("line %d out of range (have %d)", i, r.order.Lines().Len())
	}
	return r.order.Lines().At(i), nil
}

func (r *Runner) print() {
	printModel(r.out, "", r.model)
	if r.order != nil {
		for i, l := range r.order.Lines().Items() {
			printModel(r.out, fmt.Sprintf("  line[%d].", i), l)
		}
	}
}

type printable interface {
	Metadata() metadata.Provider
	Read(name string) (any, error)
	ChangedProperties() []string
	IsChanged() bool
	HasErrors() bool
}

// printModel writes one "name = value" line per property, then the change
// and error summary.
func printModel(w io.Writer, prefix string, m any) {
	p, ok := m.(printable)
	if !ok {
		return
	}
	if c, ok := p.Metadata().(*metadata.Class); ok {
		for _, prop := range c.Properties() {
			v, err := p.Read(prop.Name)
			if err != nil {
				fmt.Fprintf(w, "%s%s: %v\n", prefix, prop.Name, err)
				continue
			}
			if coll, ok := v.(*anchor.Collection[*Line]); ok {
				v = fmt.Sprintf("%d line(s)", coll.Len())
			}
			fmt.Fprintf(w, "%s%s = %v\n", prefix, prop.Name, v)
		}
	}
	fmt.Fprintf(w, "%schanged = %t [%s]\n", prefix, p.IsChanged(), strings.Join(p.ChangedProperties(), ", "))
	if p.HasErrors() {
		fmt.Fprintf(w, "%shas errors\n", prefix)
	}
}
