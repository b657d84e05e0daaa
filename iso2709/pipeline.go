// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iso2709

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/solidcoredata/marcstream/marcerr"
	"github.com/solidcoredata/marcstream/record"
	"github.com/solidcoredata/marcstream/recovery"
)

const (
	defaultChunkSize       = 512 * 1024
	defaultChannelCapacity = 1000
	defaultBatchSize       = 100
)

// Item is one pipeline result: a successfully parsed Record, or an Err
// describing the failure at this sequence position. Exactly one of
// Record, Err is set.
type Item struct {
	Seq    int
	Record *record.Record
	Err    error
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*pipelineOptions)

type pipelineOptions struct {
	chunkSize       int
	channelCapacity int
	workerCount     int
	batchSize       int
	policy          recovery.Policy
}

func defaultPipelineOptions() pipelineOptions {
	return pipelineOptions{
		chunkSize:       defaultChunkSize,
		channelCapacity: defaultChannelCapacity,
		workerCount:     runtime.NumCPU(),
		batchSize:       defaultBatchSize,
		policy:          recovery.New(recovery.Strict),
	}
}

// WithChunkSize sets the producer's read chunk size. Default 512 KiB.
func WithChunkSize(n int) PipelineOption { return func(o *pipelineOptions) { o.chunkSize = n } }

// WithChannelCapacity bounds the consumer-facing output channel. Default 1000.
func WithChannelCapacity(n int) PipelineOption {
	return func(o *pipelineOptions) { o.channelCapacity = n }
}

// WithWorkerCount bounds the number of records processed concurrently.
// Default runtime.NumCPU().
func WithWorkerCount(n int) PipelineOption { return func(o *pipelineOptions) { o.workerCount = n } }

// WithBatchSize sets how many records the producer groups into one work
// item. Default 100; purely an internal amortization knob (Design Notes
// §9), invisible to the consumer's record-at-a-time view.
func WithBatchSize(n int) PipelineOption { return func(o *pipelineOptions) { o.batchSize = n } }

// WithPipelineRecoveryPolicy sets the recovery policy used by every
// parser worker.
func WithPipelineRecoveryPolicy(p recovery.Policy) PipelineOption {
	return func(o *pipelineOptions) { o.policy = p }
}

// Pipeline overlaps file I/O, boundary scanning, and parsing behind a
// single consumer-facing record iterator, grounded on the teacher's
// internal/start.RunAll errgroup fan-out, extended with a
// semaphore-bounded worker pool and a sequence-reordering output stage so
// that out-of-order worker completion never reaches the consumer.
type Pipeline struct {
	out      chan Item
	cancel   context.CancelFunc
	done     chan struct{}
	consumed int32
}

// New starts the pipeline's producer, worker pool, and reorder stage as
// goroutines under one errgroup.Group, and returns immediately. Exactly
// one of Next/TryNext/Close may be called at a time by the consumer (spec
// §5's "single consumer handle" rule); a second call to NewConsumer-style
// access from another goroutine while one is outstanding is a caller
// error, not guarded against here.
func New(ctx context.Context, r io.Reader, opts ...PipelineOption) *Pipeline {
	o := defaultPipelineOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ctx, cancel := context.WithCancel(ctx)
	p := &Pipeline{
		out:    make(chan Item, o.channelCapacity),
		cancel: cancel,
		done:   make(chan struct{}),
	}

	group, gctx := errgroup.WithContext(ctx)
	workItems := make(chan workItem, o.workerCount)
	completed := make(chan batchResult, o.workerCount)

	group.Go(func() error { return produce(gctx, r, o, workItems) })
	group.Go(func() error { return dispatch(gctx, o, workItems, completed) })
	group.Go(func() error { return reorderAndEmit(gctx, completed, p.out) })

	go func() {
		group.Wait() // error, if any, was already delivered as an Item by dispatch/reorder
		close(p.out)
		close(p.done)
	}()

	return p
}

// Next blocks for the next record in source order. ok is false once the
// stream is exhausted (after draining any trailing error). A non-nil err
// on a returned Item closes the stream for subsequent calls.
func (p *Pipeline) Next() (item Item, ok bool) {
	item, ok = <-p.out
	return item, ok
}

// TryNext returns immediately: ok is false with a zero Item when no
// record is currently available (the caller should retry later), and
// also false once the stream is exhausted; distinguish the two with
// Closed.
func (p *Pipeline) TryNext() (item Item, ok bool) {
	select {
	case item, open := <-p.out:
		return item, open
	default:
		return Item{}, false
	}
}

// Closed reports whether the pipeline has finished delivering all items.
func (p *Pipeline) Closed() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// Close cancels the pipeline: the producer stops reading, in-flight
// workers abandon their items, and Next drains to exhaustion. Only the
// first call to Close takes effect.
func (p *Pipeline) Close() {
	if atomic.CompareAndSwapInt32(&p.consumed, 0, 1) {
		p.cancel()
	}
	<-p.done
}

// workItem is one producer-dispatched unit: a batch of up to batchSize
// concatenated, already-boundary-scanned records.
type workItem struct {
	firstSeq int
	data     []byte
	spans    []Span // offsets relative to data
}

// batchResult is one worker's completed output for a workItem, kept
// together so the reorder stage only needs to track batch-granularity
// sequencing, not per-record.
type batchResult struct {
	firstSeq int
	items    []Item
}

// produce reads the source in fixed-size chunks, runs the boundary
// scanner over a rolling buffer, and partitions found spans into
// work items of up to o.batchSize records. Unfinished trailing bytes are
// retained for the next chunk.
func produce(ctx context.Context, r io.Reader, o pipelineOptions, out chan<- workItem) error {
	defer close(out)
	var buf []byte
	seq := 0
	chunk := make([]byte, o.chunkSize)

	for {
		if ctx.Err() != nil {
			return nil
		}
		n, err := r.Read(chunk)
		if n > 0 {
			buf = append(buf, chunk[:n]...)
			spans := Scan(buf)
			consumed := 0
			for len(spans) > 0 {
				batch := spans
				if len(batch) > o.batchSize {
					batch = batch[:o.batchSize]
				}
				item := workItem{firstSeq: seq, spans: make([]Span, len(batch))}
				dataStart := batch[0].Offset
				dataEnd := batch[len(batch)-1].Offset + batch[len(batch)-1].Length
				item.data = buf[dataStart:dataEnd]
				for i, s := range batch {
					item.spans[i] = Span{Offset: s.Offset - dataStart, Length: s.Length}
				}
				select {
				case out <- item:
				case <-ctx.Done():
					return nil
				}
				seq += len(batch)
				consumed = dataEnd
				spans = spans[len(batch):]
			}
			buf = append([]byte(nil), buf[consumed:]...)
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return marcerr.New(marcerr.KindTruncated, seq, "", err)
		}
	}
}

// dispatch fans work items out to a semaphore-bounded set of
// goroutines (one per item, gated to at most o.workerCount concurrent),
// grounded on the teacher's errgroup.WithContext fan-out pattern. It
// closes completed once every dispatched item has reported in.
func dispatch(ctx context.Context, o pipelineOptions, in <-chan workItem, completed chan<- batchResult) error {
	sem := semaphore.NewWeighted(int64(o.workerCount))
	var wg sync.WaitGroup
	defer func() {
		wg.Wait()
		close(completed)
	}()

	for item := range in {
		if err := sem.Acquire(ctx, 1); err != nil {
			return nil
		}
		wg.Add(1)
		go func(item workItem) {
			defer wg.Done()
			defer sem.Release(1)
			result := processBatch(o.policy, item)
			select {
			case completed <- result:
			case <-ctx.Done():
			}
		}(item)
	}
	return nil
}

// processBatch parses every record in item against an in-memory cursor,
// per §4.C's reader algorithm, recovering from a worker panic the way
// the spec's "panic safety" clause requires: caught here and surfaced as
// a failed Item at the offending sequence position rather than crashing
// the pipeline.
func processBatch(policy recovery.Policy, item workItem) (result batchResult) {
	result.firstSeq = item.firstSeq
	result.items = make([]Item, 0, len(item.spans))
	defer func() {
		if rec := recover(); rec != nil {
			result.items = append(result.items, Item{
				Seq: item.firstSeq + len(result.items),
				Err: marcerr.New(marcerr.KindInvalidField, item.firstSeq, "", fmt.Errorf("panic in parser worker: %v", rec)),
			})
		}
	}()

	for i, span := range item.spans {
		seq := item.firstSeq + i
		recordBytes := item.data[span.Offset : span.Offset+span.Length]
		rd := NewReader(bytes.NewReader(recordBytes), WithRecoveryPolicy(policy))
		rec, err := rd.ReadRecord()
		if err != nil {
			result.items = append(result.items, Item{Seq: seq, Err: err})
			return result
		}
		result.items = append(result.items, Item{Seq: seq, Record: rec})
	}
	return result
}

// errStreamFailed is returned by reorderAndEmit when it stops the
// pipeline early because a delivered Item carried an error. Returning a
// non-nil error here makes errgroup.WithContext cancel the shared
// context, which is what unblocks produce and dispatch (both select on
// ctx.Done while sending) instead of leaving them blocked forever on a
// reorder stage that has stopped reading.
var errStreamFailed = fmt.Errorf("marcstream: pipeline stopped after a record error")

// reorderAndEmit buffers out-of-order batch completions and releases
// them to out strictly in source-sequence order (§4.F's ordering
// guarantee), stopping as soon as any Item carries an error.
func reorderAndEmit(ctx context.Context, completed <-chan batchResult, out chan<- Item) error {
	pending := make(map[int]batchResult)
	next := 0

	emit := func(br batchResult) (ok bool, failed bool) {
		for _, item := range br.items {
			select {
			case out <- item:
				if item.Err != nil {
					return false, true
				}
			case <-ctx.Done():
				return false, false
			}
		}
		return true, false
	}

	drainReady := func() (ok bool, failed bool) {
		for {
			br, present := pending[next]
			if !present {
				return true, false
			}
			delete(pending, next)
			if cont, failed := emit(br); !cont {
				return false, failed
			}
			next += len(br.items)
		}
	}

	for {
		select {
		case br, open := <-completed:
			if !open {
				drainReady()
				return nil
			}
			if br.firstSeq == next {
				cont, failed := emit(br)
				if failed {
					return errStreamFailed
				}
				if !cont {
					return nil
				}
				next += len(br.items)
				cont, failed = drainReady()
				if failed {
					return errStreamFailed
				}
				if !cont {
					return nil
				}
			} else {
				pending[br.firstSeq] = br
			}
		case <-ctx.Done():
			return nil
		}
	}
}
