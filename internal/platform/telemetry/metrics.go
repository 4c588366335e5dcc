package telemetry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Attribute keys shared by spans and metric labels.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrTaskName    = attribute.Key("task.name")
	AttrStep        = attribute.Key("saga.step")
	AttrLockKind    = attribute.Key("lock.kind")
)

// Metrics holds the service instruments. A nil *Metrics records nothing.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	TaskExecutions       metric.Int64Counter
	TaskDuration         metric.Float64Histogram
	CompensationOutcomes metric.Int64Counter
	// LockConflicts counts lock and rate-limit acquisitions refused
	// because the key was held.
	LockConflicts metric.Int64Counter
}

// instruments creates instruments on one meter and collects the errors.
type instruments struct {
	meter metric.Meter
	errs  []error
}

func (in *instruments) histogram(name, desc, unit string) metric.Float64Histogram {
	h, err := in.meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit(unit))
	if err != nil {
		in.errs = append(in.errs, fmt.Errorf("creating %s: %w", name, err))
	}
	return h
}

func (in *instruments) counter(name, desc, unit string) metric.Int64Counter {
	c, err := in.meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
	if err != nil {
		in.errs = append(in.errs, fmt.Errorf("creating %s: %w", name, err))
	}
	return c
}

// NewMetrics creates every instrument on a meter named after the service.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	in := &instruments{meter: mp.Meter(serviceName)}

	m := &Metrics{
		ServerRequestDuration: in.histogram("http.server.request.duration", "Duration of API requests by route", "s"),
		ServerRequestTotal:    in.counter("http.server.request.total", "API requests by route and status", "{request}"),
		ClientRequestDuration: in.histogram("http.client.request.duration", "Duration of calls to the backends", "s"),
		ClientRequestTotal:    in.counter("http.client.request.total", "Calls to the backends by service and result", "{request}"),
		TaskExecutions:        in.counter("orchestrator.task.executions", "Task handler attempts by task name and result", "{attempt}"),
		TaskDuration:          in.histogram("orchestrator.task.duration", "Duration of one task handler attempt", "s"),
		CompensationOutcomes:  in.counter("orchestrator.compensation.outcomes", "Compensating steps by step name and result", "{step}"),
		LockConflicts:         in.counter("orchestrator.lock.conflicts", "Refused lock and rate-limit acquisitions", "{conflict}"),
	}
	if err := errors.Join(in.errs...); err != nil {
		return nil, err
	}
	return m, nil
}

// RecordTask records one handler attempt.
func (m *Metrics) RecordTask(ctx context.Context, name, result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(AttrTaskName.String(name), AttrResult.String(result))
	m.TaskExecutions.Add(ctx, 1, attrs)
	m.TaskDuration.Record(ctx, elapsed.Seconds(), attrs)
}

// RecordCompensation counts one compensating step.
func (m *Metrics) RecordCompensation(ctx context.Context, step, result string) {
	if m == nil {
		return
	}
	m.CompensationOutcomes.Add(ctx, 1, metric.WithAttributes(AttrStep.String(step), AttrResult.String(result)))
}

// RecordLockConflict counts one refused acquisition.
func (m *Metrics) RecordLockConflict(ctx context.Context, kind string) {
	if m == nil {
		return
	}
	m.LockConflicts.Add(ctx, 1, metric.WithAttributes(AttrLockKind.String(kind)))
}
