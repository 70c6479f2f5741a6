package cmd

import (
	"time"

	"github.com/foomo/keel/log"
	"github.com/foomo/showcase/client"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewProbeCommand calls the public api of a running server and logs what it serves
func NewProbeCommand() *cobra.Command {
	v := newViper()

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Probe the public api of a running server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l := log.Logger().Named("probe")

			c, err := client.NewHTTPClient(endpointFlag(v))
			if err != nil {
				return err
			}
			defer c.Shutdown()

			var failed int
			for i := 1; i <= probeNumFlag(v); i++ {
				start := time.Now()
				home, err := c.Home(cmd.Context())
				if err != nil {
					failed++
					l.Error("failed to get home", zap.Int("round", i), zap.Error(err))
				} else {
					l.Info("got home",
						zap.Int("round", i),
						zap.Int("featuredWork", len(home.FeaturedWork)),
						zap.Int("collaborations", len(home.Collaborations)),
						zap.Duration("duration", time.Since(start)),
					)
				}
				if i < probeNumFlag(v) {
					time.Sleep(probeDelayFlag(v))
				}
			}
			if failed > 0 {
				return errors.Errorf("%d of %d probes failed", failed, probeNumFlag(v))
			}
			return nil
		},
	}

	flags := cmd.Flags()
	addEndpointFlag(flags, v)
	addProbeNumFlag(flags, v)
	addProbeDelayFlag(flags, v)

	return cmd
}
