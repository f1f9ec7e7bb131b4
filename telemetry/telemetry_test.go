package telemetry

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
)

type TelemetrySuite struct {
	suite.Suite
	ctx context.Context
}

func (s *TelemetrySuite) SetupTest() {
	s.ctx = context.Background()
}

func TestTelemetrySuite(t *testing.T) {
	suite.Run(t, new(TelemetrySuite))
}

func (s *TelemetrySuite) TestDisabled() {
	tel, err := New(s.ctx, Config{Enabled: false})
	s.Require().NoError(err)
	s.False(tel.IsEnabled())
	s.NotNil(tel.Tracer())

	_, span := tel.Tracer().Start(s.ctx, "noop")
	s.False(span.SpanContext().IsValid())
	span.End()

	s.NoError(tel.Shutdown(s.ctx))
}

func (s *TelemetrySuite) TestStdoutExporter() {
	var buf bytes.Buffer
	tel, err := New(s.ctx, Config{
		Enabled:        true,
		ServiceName:    "calculator-test",
		ServiceVersion: "test",
		Exporter:       ExporterStdout,
		TraceWriter:    &buf,
	})
	s.Require().NoError(err)
	s.True(tel.IsEnabled())

	_, span := tel.Tracer().Start(s.ctx, "GET /add")
	s.True(span.SpanContext().IsValid())
	span.End()

	s.Require().NoError(tel.Shutdown(s.ctx))
	s.Contains(buf.String(), "GET /add")
}

func (s *TelemetrySuite) TestUnknownExporter() {
	_, err := New(s.ctx, Config{Enabled: true, ServiceName: "x", Exporter: "zipkin"})
	s.Error(err)
}
