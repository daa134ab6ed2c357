package main

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tortugaresearch/anchor"
	"github.com/tortugaresearch/anchor/event"
	"github.com/tortugaresearch/anchor/internal/config"
	"github.com/tortugaresearch/anchor/internal/demo"
	"github.com/tortugaresearch/anchor/internal/logging"
	"github.com/tortugaresearch/anchor/internal/production"
	"github.com/tortugaresearch/anchor/internal/version"
	"github.com/tortugaresearch/anchor/metadata"
	"github.com/tortugaresearch/anchor/propbag"
)

// buildRootCmd constructs the command tree. Reports go to out, logs to logw.
func buildRootCmd(out, logw io.Writer) *cobra.Command {
	cfg := config.Config{}.WithDefaults()
	var log zerolog.Logger

	root := &cobra.Command{
		Use:           "anchor",
		Short:         "Drive change-tracked demo models from scenario files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "Config file (.yaml, .toml or .json)")
	root.PersistentFlags().String("log-level", cfg.LogLevel, "Log level: debug|info|warn|error")
	root.PersistentFlags().String("log-format", cfg.LogFormat, "Log format: console|json")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		if path, _ := flags.GetString("config"); path != "" {
			loaded, err := config.Load(path)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			cfg = loaded.WithDefaults()
		}
		if flags.Changed("log-level") {
			cfg.LogLevel, _ = flags.GetString("log-level")
		}
		if flags.Changed("log-format") {
			cfg.LogFormat, _ = flags.GetString("log-format")
		}
		if f := flags.Lookup("metrics"); f != nil && flags.Changed("metrics") {
			cfg.Metrics = f.Value.String() == "true"
		}
		l, err := logging.New(logw, cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			return err
		}
		log = l
		anchor.SetLogger(l)
		return nil
	}

	runCmd := &cobra.Command{
		Use:     "run <scenario>",
		Short:   "Apply a scenario file to a demo model",
		Example: "  anchor run testdata/order.yaml --metrics",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := config.LoadScenario(args[0])
			if err != nil {
				return err
			}
			runner := demo.NewRunner(log, out)
			events, _ := cmd.Flags().GetBool("events")
			var ch chan production.Change
			var pub *production.ChannelPublisher
			if events {
				ch = make(chan production.Change, 1024)
				pub = production.NewChannelPublisher(ch)
				runner.PublishTo(pub)
			}
			runErr := runner.Run(sc)
			if pub != nil {
				if err := pub.Close(); err != nil {
					return err
				}
				for c := range ch {
					fmt.Fprintf(out, "event %s.%s\n", c.Model, c.Property)
				}
				if n := pub.Dropped(); n > 0 {
					log.Warn().Int64("dropped", n).Msg("change events dropped")
				}
			}
			if runErr != nil {
				return runErr
			}
			if cfg.Metrics {
				return writeMetrics(out, prometheus.DefaultGatherer)
			}
			return nil
		},
	}
	runCmd.Flags().Bool("metrics", false, "Print anchor metrics in text exposition format when done")
	runCmd.Flags().Bool("events", false, "Print every property change of the model after the run")

	graphCmd := &cobra.Command{
		Use:       "graph <person|order|line>",
		Short:     "Print the property metadata of a demo model",
		Example:   "  anchor graph person | dot -Tsvg > person.svg",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{config.ModelPerson, config.ModelOrder, modelLine},
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			return writeGraph(out, args[0], format)
		},
	}
	graphCmd.Flags().String("format", "dot", "Output format: dot|json|yaml")

	leakCmd := &cobra.Command{
		Use:   "leak",
		Short: "Show that dropped weak listeners are reclaimed and detached",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, _ := cmd.Flags().GetInt("listeners")
			rep := runLeak(n)
			log.Debug().Int("listeners", n).Msg("leak check done")
			fmt.Fprintf(out, "listeners=%d attached_before=%t attached_after=%t invoked=%d\n",
				rep.listeners, rep.attachedBefore, rep.attachedAfter, rep.invoked)
			if rep.attachedAfter || rep.invoked > 0 {
				return fmt.Errorf("weak listeners were not reclaimed")
			}
			return nil
		},
	}
	leakCmd.Flags().Int("listeners", 100, "Number of transient listeners to register")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(out, version.String())
		},
	}

	root.AddCommand(runCmd, graphCmd, leakCmd, versionCmd)
	return root
}

const modelLine = "line"

// writeGraph renders the metadata of a freshly built demo model.
func writeGraph(w io.Writer, model, format string) error {
	var m interface{ Metadata() metadata.Provider }
	switch model {
	case config.ModelPerson:
		m = demo.NewPerson()
	case config.ModelOrder:
		m = demo.NewOrder()
	case modelLine:
		m = demo.NewLine("", 1, 0)
	default:
		return fmt.Errorf("unknown model %q", model)
	}
	class, ok := m.Metadata().(*metadata.Class)
	if !ok {
		return fmt.Errorf("model %q has no class metadata", model)
	}
	v := &production.Visualizer{}
	var (
		data []byte
		err  error
	)
	switch format {
	case "dot":
		_, err = io.WriteString(w, v.ExportDOT(class, nil))
		return err
	case "json":
		data, err = v.ExportJSON(class)
	case "yaml":
		data, err = v.ExportYAML(class)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	if format == "json" {
		_, err = io.WriteString(w, "\n")
	}
	return err
}

type leakReport struct {
	listeners      int
	attachedBefore bool
	attachedAfter  bool
	invoked        int
}

// runLeak registers n listeners on a person, drops every reference to them,
// collects garbage and raises a change.
func runLeak(n int) leakReport {
	p := demo.NewPerson()
	rep := leakReport{listeners: n}
	addTransient(p, n, &rep.invoked)
	rep.attachedBefore = p.WeakPropertyChanged().Attached()

	runtime.GC()
	runtime.GC()

	p.SetFirstName("collected")
	rep.attachedAfter = p.WeakPropertyChanged().Attached()
	return rep
}

func addTransient(p *demo.Person, n int, invoked *int) {
	for range n {
		l := event.NewListener(func(any, propbag.PropertyChangedArgs) { *invoked++ })
		_ = p.AddWeakPropertyChangedHandler(l)
	}
}

// writeMetrics encodes the anchor metric families from g as exposition text.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range mfs {
		if !ownFamily(mf) {
			continue
		}
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}

func ownFamily(mf *dto.MetricFamily) bool {
	return strings.HasPrefix(mf.GetName(), "anchor_")
}
