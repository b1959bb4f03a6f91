package search

import "errors"

// Sink receives the progress of a run: one snapshot per expansion, the final snapshot, then the summary
type Sink interface {
	Emit(snap Snapshot) error
	Finish(res Result) error
}

// Discard drops everything
var Discard Sink = discard{}

type discard struct{}

func (discard) Emit(Snapshot) error { return nil }
func (discard) Finish(Result) error { return nil }

// Recorder keeps every emission in memory
type Recorder struct {
	Snapshots []Snapshot
	Result    *Result
}

func (r *Recorder) Emit(snap Snapshot) error {
	r.Snapshots = append(r.Snapshots, snap)
	return nil
}

func (r *Recorder) Finish(res Result) error {
	r.Result = &res
	return nil
}

// Last returns the most recent snapshot, false if none was emitted
func (r *Recorder) Last() (Snapshot, bool) {
	if len(r.Snapshots) == 0 {
		return Snapshot{}, false
	}
	return r.Snapshots[len(r.Snapshots)-1], true
}

// MultiSink fans out to every sink in order; all sinks see every call and errors are joined
func MultiSink(sinks ...Sink) Sink {
	return multiSink(sinks)
}

type multiSink []Sink

func (m multiSink) Emit(snap Snapshot) error {
	var errs []error
	for _, s := range m {
		if err := s.Emit(snap); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m multiSink) Finish(res Result) error {
	var errs []error
	for _, s := range m {
		if err := s.Finish(res); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
