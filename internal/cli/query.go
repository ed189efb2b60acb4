package cli

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/bufbuild/connect-go"
	"github.com/spf13/cobra"
	"golang.org/x/net/http2"

	"github.com/juggajay/siteproof-v2-sub000/internal/rpc"
	analysisrpc "github.com/juggajay/siteproof-v2-sub000/internal/rpc/analysis"
	"github.com/juggajay/siteproof-v2-sub000/internal/rpc/connectjson"
)

// NewQueryCmd sends a free-form question to the daemon and prints the answer.
func NewQueryCmd(opts *Options) *cobra.Command {
	var modelOverride string
	var contextPairs []string
	var showTools bool

	cmd := &cobra.Command{
		Use:   "query \"<question>\"",
		Short: "Ask the analysis daemon a free-form question",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			question := strings.TrimSpace(args[0])
			if question == "" {
				return fmt.Errorf("question cannot be empty")
			}

			reqBody := rpc.QueryRequest{
				Query:   question,
				Context: parseContextPairs(contextPairs),
				Model:   modelOverride,
			}

			baseURL := daemonURL(cfg.Server.Addr)
			var resp rpc.QueryResponse
			switch strings.ToLower(strings.TrimSpace(cfg.Server.Transport)) {
			case "json":
				err = postJSON(cmd.Context(), baseURL+"/v1/analysis/query", reqBody, &resp)
			default:
				resp, err = queryConnect(cmd.Context(), baseURL+analysisrpc.ConnectQueryProcedure, reqBody)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, resp.Text)
			if showTools {
				for _, exec := range resp.Executions {
					data, _ := json.Marshal(exec.Output)
					fmt.Fprintf(out, "[tool %s] %s\n", exec.Tool, string(data))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&modelOverride, "model", "", "Override model id for this run")
	cmd.Flags().StringSliceVar(&contextPairs, "context", nil, "Context fields as key=value (repeatable or comma-separated)")
	cmd.Flags().BoolVar(&showTools, "show-tools", false, "Print tool executions after the answer")
	return cmd
}

func daemonURL(addr string) string {
	if strings.HasPrefix(addr, "http://") || strings.HasPrefix(addr, "https://") {
		return addr
	}
	if strings.HasPrefix(addr, ":") {
		return "http://localhost" + addr
	}
	return "http://" + addr
}

func parseContextPairs(pairs []string) map[string]string {
	if len(pairs) == 0 {
		return nil
	}
	fields := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, val, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(key) == "" {
			continue
		}
		fields[strings.TrimSpace(key)] = strings.TrimSpace(val)
	}
	return fields
}

func queryConnect(ctx context.Context, url string, reqBody rpc.QueryRequest) (rpc.QueryResponse, error) {
	client := connect.NewClient[rpc.QueryRequest, rpc.QueryResponse](buildH2CClient(), url, connect.WithCodec(connectjson.Codec{}))
	resp, err := client.CallUnary(ctx, connect.NewRequest(&reqBody))
	if err != nil {
		return rpc.QueryResponse{}, err
	}
	return *resp.Msg, nil
}

func buildH2CClient() *http.Client {
	return &http.Client{
		Transport: &http2.Transport{
			AllowHTTP: true,
			DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
				var d net.Dialer
				return d.DialContext(ctx, network, addr)
			},
		},
	}
}
