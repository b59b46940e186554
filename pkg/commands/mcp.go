package commands

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/datepicker/pkg/commands/options"
	"tableflip.dev/datepicker/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	var (
		transport string
		httpHost  string
		httpPort  int
		httpPath  string
	)
	po := &options.PickerOptions{}

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "start the Model Context Protocol server",
		Long: `Launch an MCP server that checks dates against the picker constraints and
reads or writes saved selections.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd, po, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer e.close()

			runner := mcp.Runner{
				Persistence:      e.store,
				Config:           e.picker,
				Name:             "pickdate",
				Version:          "dev",
				HTTPEndpointPath: strings.TrimSpace(httpPath),
			}

			switch strings.ToLower(strings.TrimSpace(transport)) {
			case "", string(mcp.TransportHTTP):
				host := strings.TrimSpace(httpHost)
				if host == "" {
					host = "127.0.0.1"
				}
				if httpPort < 0 || httpPort > 65535 {
					return fmt.Errorf("invalid http-port %d", httpPort)
				}
				runner.Transport = mcp.TransportHTTP
				runner.HTTPListenAddr = net.JoinHostPort(host, strconv.Itoa(httpPort))
				runner.OnHTTPListening = func(a net.Addr) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "MCP HTTP server listening on %s\n", a)
				}
			case string(mcp.TransportStdio):
				runner.Transport = mcp.TransportStdio
			default:
				return fmt.Errorf("unknown transport %q", transport)
			}
			return runner.Do(e.ctx)
		},
	}

	cmd.Flags().StringVar(&transport, "transport", string(mcp.TransportHTTP), "transport to serve (http or stdio)")
	cmd.Flags().StringVar(&httpHost, "http-host", "127.0.0.1", "host to bind the HTTP transport")
	cmd.Flags().IntVar(&httpPort, "http-port", 8080, "port to bind the HTTP transport")
	cmd.Flags().StringVar(&httpPath, "http-path", "/mcp", "endpoint path for the HTTP transport")
	options.AddPickerArgs(cmd, po)

	topLevel.AddCommand(cmd)
}
