// Package config resolves the Detector's Settings and the extractor's
// Options, either from in-process functional options (grounded on the
// builderConfig/BuilderOption shape in the teacher's builder package) or
// layered from a YAML file and environment variables via
// github.com/spf13/viper, with optional hot-reload via
// github.com/fsnotify/fsnotify producing a fresh, independent snapshot on
// every change rather than mutating one in place (see SPEC_FULL.md §5:
// concurrency model keeps resolved settings immutable after construction).
package config

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/Steinbeck-Lab/MORTAR/extractor"
	"github.com/Steinbeck-Lab/MORTAR/sugars"
)

// Resolved bundles a fully-resolved Settings/Options pair, the unit a
// caller actually wires into sugars.NewHeuristicDetector and
// extractor.CopyAndExtract.
type Resolved struct {
	Settings sugars.Settings
	Options  extractor.Options
}

// Option customizes a Resolved value before it is returned by Load or
// Resolve.
type Option func(*Resolved)

// WithRemoveOnlyTerminalSugars overrides Settings.RemoveOnlyTerminalSugars.
func WithRemoveOnlyTerminalSugars(v bool) Option {
	return func(r *Resolved) { r.Settings.RemoveOnlyTerminalSugars = v }
}

// WithPreservationModeThreshold overrides Settings.PreservationModeThreshold.
func WithPreservationModeThreshold(n int) Option {
	return func(r *Resolved) { r.Settings.PreservationModeThreshold = n }
}

// WithSpiroRingsAsCircularSugars overrides
// Settings.DetectSpiroRingsAsCircularSugars.
func WithSpiroRingsAsCircularSugars(v bool) Option {
	return func(r *Resolved) { r.Settings.DetectSpiroRingsAsCircularSugars = v }
}

// WithLinearSugarCandidateMinSize overrides
// Settings.LinearSugarCandidateMinSize.
func WithLinearSugarCandidateMinSize(n int) Option {
	return func(r *Resolved) { r.Settings.LinearSugarCandidateMinSize = n }
}

// WithPostProcessingSplits overrides Options.ApplyPostProcessingSplits.
func WithPostProcessingSplits(v bool) Option {
	return func(r *Resolved) { r.Options.ApplyPostProcessingSplits = v }
}

// WithMarkAttachPointsByR overrides Options.MarkAttachPointsByR.
func WithMarkAttachPointsByR(v bool) Option {
	return func(r *Resolved) { r.Options.MarkAttachPointsByR = v }
}

// WithLimitPostProcessingBySize overrides Options.LimitPostProcessingBySize.
func WithLimitPostProcessingBySize(v bool) Option {
	return func(r *Resolved) { r.Options.LimitPostProcessingBySize = v }
}

// Resolve builds a Resolved value from deterministic defaults plus opts,
// applied in order (last wins), with no file or environment involved.
//
// Complexity: O(len(opts)).
func Resolve(opts ...Option) Resolved {
	r := Resolved{
		Settings: sugars.DefaultSettings(),
		Options:  extractor.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Load resolves a Resolved value from defaults, then a YAML config file
// at path (if path is non-empty; a file that cannot be read is an
// error), then environment variables
// prefixed GLYCUTTER_, then the given opts, in that increasing-priority
// order — matching viper's own default/file/env/override precedence.
func Load(path string, opts ...Option) (Resolved, error) {
	v := viper.New()
	setViperDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Resolved{}, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	v.SetEnvPrefix("GLYCUTTER")
	v.AutomaticEnv()

	r := Resolved{
		Settings: sugars.Settings{
			RemoveOnlyTerminalSugars:         v.GetBool("remove_only_terminal_sugars"),
			PreservationModeThreshold:        v.GetInt("preservation_mode_threshold"),
			DetectSpiroRingsAsCircularSugars: v.GetBool("detect_spiro_rings_as_circular_sugars"),
			LinearSugarCandidateMinSize:      v.GetInt("linear_sugar_candidate_min_size"),
		},
		Options: extractor.Options{
			RemoveCircularSugars:          v.GetBool("remove_circular_sugars"),
			RemoveLinearSugars:            v.GetBool("remove_linear_sugars"),
			ApplyPostProcessingSplits:     v.GetBool("apply_post_processing_splits"),
			DiscardTooSmallSugarFragments: v.GetBool("discard_too_small_sugar_fragments"),
			PreserveStereochemistry:       v.GetBool("preserve_stereochemistry"),
			MarkAttachPointsByR:           v.GetBool("mark_attach_points_by_r"),
			LimitPostProcessingBySize:     v.GetBool("limit_post_processing_by_size"),
		},
	}

	for _, opt := range opts {
		opt(&r)
	}

	return r, nil
}

// Watcher reloads a Resolved value from a config file whenever it
// changes on disk, delivering each fresh snapshot on Changes(). It never
// mutates a previously delivered Resolved value; each reload is an
// independent value, matching the extractor's concurrency model.
type Watcher struct {
	path    string
	opts    []Option
	watcher *fsnotify.Watcher
	changes chan Resolved
}

// NewWatcher starts watching path for changes and returns a Watcher whose
// Changes channel receives a freshly-loaded Resolved after every write.
// The initial load is not sent on the channel; call Load once yourself
// to obtain the starting snapshot.
func NewWatcher(path string, opts ...Option) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: starting watcher: %w", err)
	}
	if err := fw.Add(path); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("config: watching %s: %w", path, err)
	}

	w := &Watcher{path: path, opts: opts, watcher: fw, changes: make(chan Resolved, 1)}
	go w.run()
	return w, nil
}

// Changes returns the channel of reloaded Resolved snapshots.
func (w *Watcher) Changes() <-chan Resolved { return w.changes }

// Close stops the watcher and releases its file descriptor.
func (w *Watcher) Close() error {
	close(w.changes)
	return w.watcher.Close()
}

func (w *Watcher) run() {
	for event := range w.watcher.Events {
		if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
			continue
		}
		r, err := Load(w.path, w.opts...)
		if err != nil {
			continue
		}
		select {
		case w.changes <- r:
		default:
			// Drop a stale pending snapshot in favor of the newest one.
			select {
			case <-w.changes:
			default:
			}
			w.changes <- r
		}
	}
}

func setViperDefaults(v *viper.Viper) {
	defaults := Resolve()
	v.SetDefault("remove_only_terminal_sugars", defaults.Settings.RemoveOnlyTerminalSugars)
	v.SetDefault("preservation_mode_threshold", defaults.Settings.PreservationModeThreshold)
	v.SetDefault("detect_spiro_rings_as_circular_sugars", defaults.Settings.DetectSpiroRingsAsCircularSugars)
	v.SetDefault("linear_sugar_candidate_min_size", defaults.Settings.LinearSugarCandidateMinSize)
	v.SetDefault("remove_circular_sugars", defaults.Options.RemoveCircularSugars)
	v.SetDefault("remove_linear_sugars", defaults.Options.RemoveLinearSugars)
	v.SetDefault("apply_post_processing_splits", defaults.Options.ApplyPostProcessingSplits)
	v.SetDefault("discard_too_small_sugar_fragments", defaults.Options.DiscardTooSmallSugarFragments)
	v.SetDefault("preserve_stereochemistry", defaults.Options.PreserveStereochemistry)
	v.SetDefault("mark_attach_points_by_r", defaults.Options.MarkAttachPointsByR)
	v.SetDefault("limit_post_processing_by_size", defaults.Options.LimitPostProcessingBySize)
}
