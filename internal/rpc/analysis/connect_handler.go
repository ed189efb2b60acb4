package analysis

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/bufbuild/connect-go"

	"github.com/juggajay/siteproof-v2-sub000/internal/agent"
	"github.com/juggajay/siteproof-v2-sub000/internal/analysis"
	"github.com/juggajay/siteproof-v2-sub000/internal/observability"
	"github.com/juggajay/siteproof-v2-sub000/internal/rpc"
	"github.com/juggajay/siteproof-v2-sub000/internal/rpc/connectjson"
)

const ConnectQueryProcedure = "/siteproof.analysis.v1.AnalysisService/Query"

// NewConnectHandler builds a Connect unary handler for Query.
func NewConnectHandler(svc *analysis.Service, metrics *observability.Metrics) (string, http.Handler) {
	h := &connectQueryHandler{svc: svc, metrics: metrics}
	return ConnectQueryProcedure, connect.NewUnaryHandler(ConnectQueryProcedure, h.handle, connect.WithCodec(connectjson.Codec{}))
}

type connectQueryHandler struct {
	svc     *analysis.Service
	metrics *observability.Metrics
}

func (h *connectQueryHandler) handle(ctx context.Context, req *connect.Request[rpc.QueryRequest]) (*connect.Response[rpc.QueryResponse], error) {
	h.metrics.IncActiveSessions("connect")
	defer h.metrics.DecActiveSessions("connect")

	if req.Msg == nil || req.Msg.Query == "" {
		h.metrics.RecordTransportError("connect", "missing_query")
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("query is required"))
	}

	start := time.Now()
	res, err := h.svc.Query(ctx, req.Msg.Query, req.Msg.Context, req.Msg.Model)
	if err != nil {
		outcome := "error"
		code := connect.CodeInternal
		if errors.Is(err, agent.ErrMaxIterations) {
			outcome = "max_iterations"
			code = connect.CodeResourceExhausted
		}
		h.metrics.RecordAnalysis("query", outcome, time.Since(start))
		return nil, connect.NewError(code, err)
	}
	h.metrics.RecordAnalysis("query", "ok", time.Since(start))

	return connect.NewResponse(&rpc.QueryResponse{
		Text:       res.Text,
		Persona:    res.Persona,
		Model:      res.Model,
		Rounds:     res.Rounds,
		Executions: res.Executions,
	}), nil
}
