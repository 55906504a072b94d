package timeline

import (
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("apptendo.lib.timeline")
