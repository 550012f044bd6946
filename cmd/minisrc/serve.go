package main

import (
	"net/http"
	"time"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/ezrec/minisrc/web"
)

func newServeCommand(opt *options) (serve *cobra.Command) {
	serve = &cobra.Command{
		Use:   "serve",
		Short: "Serve the assembler over HTTP",
		Long: `Serve runs an HTTP server with an assembler page at '/', and
accepts form posts of 'code' and 'format' at '/assemble'.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg, err := opt.settings(cmd)
			if err != nil {
				return
			}

			srv := web.NewServer()
			srv.Verbose = cfg.Verbose

			server := &http.Server{
				Addr:              cfg.Listen,
				Handler:           srv,
				ReadHeaderTimeout: 10 * time.Second,
			}

			glog.Infof("minisrc: listening on %v", cfg.Listen)
			err = server.ListenAndServe()
			return
		},
	}

	serve.Flags().StringVar(&opt.listen, "listen", ":8080", "address to listen on")

	return
}
