// Package hwinfo assembles the board hardware report from the system info
// file, the network interface tree and the revision decoder.
package hwinfo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/OpenTraceLab/pihwinfo/pkg/cpuinfo"
	"github.com/OpenTraceLab/pihwinfo/pkg/netif"
	"github.com/OpenTraceLab/pihwinfo/pkg/revision"
)

const unknown = "UNKNOWN"

// Info is the full hardware report for one board.
type Info struct {
	revision.Descriptor

	ModelName         string            `json:"model_name"`
	SerialNumber      string            `json:"serial_number"`
	NetworkInterfaces map[string]string `json:"network_interface"`
}

// Collector gathers an Info from the local filesystem.
type Collector struct {
	CPUInfoPath string
	NetPath     string
	Logger      *slog.Logger

	parser *cpuinfo.Parser
}

// NewCollector creates a Collector. Empty paths fall back to the Linux
// defaults and a nil logger discards output.
func NewCollector(cpuInfoPath, netPath string, logger *slog.Logger) (*Collector, error) {
	if cpuInfoPath == "" {
		cpuInfoPath = cpuinfo.DefaultPath
	}
	if netPath == "" {
		netPath = netif.DefaultPath
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	parser, err := cpuinfo.NewParser()
	if err != nil {
		return nil, fmt.Errorf("create cpuinfo parser: %w", err)
	}
	return &Collector{
		CPUInfoPath: cpuInfoPath,
		NetPath:     netPath,
		Logger:      logger,
		parser:      parser,
	}, nil
}

// Collect reads both sources concurrently. A missing source is logged and
// treated as no data; a revision code that fails to decode leaves the
// descriptor UNKNOWN. Only unexpected I/O failures and context cancellation
// are returned as errors.
func (c *Collector) Collect(ctx context.Context) (Info, error) {
	if err := ctx.Err(); err != nil {
		return Info{}, err
	}

	var (
		sys    cpuinfo.Info
		ifaces map[string]string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		info, err := c.parser.ParseFile(c.CPUInfoPath)
		switch {
		case errors.Is(err, cpuinfo.ErrNotFound):
			c.Logger.Warn("load hardware info failed", "path", c.CPUInfoPath, "error", err)
			return nil
		case err != nil:
			return fmt.Errorf("read %s: %w", c.CPUInfoPath, err)
		}
		sys = info
		return gctx.Err()
	})
	g.Go(func() error {
		found, err := netif.Enumerate(c.NetPath)
		switch {
		case errors.Is(err, netif.ErrNotFound):
			c.Logger.Warn("load network interface info failed", "path", c.NetPath, "error", err)
			return nil
		case err != nil:
			return fmt.Errorf("enumerate interfaces: %w", err)
		}
		ifaces = found
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return Info{}, err
	}

	return c.assemble(sys, ifaces), nil
}

func (c *Collector) assemble(sys cpuinfo.Info, ifaces map[string]string) Info {
	info := Info{
		Descriptor:        revision.Unknown(),
		ModelName:         unknown,
		SerialNumber:      unknown,
		NetworkInterfaces: ifaces,
	}
	if info.NetworkInterfaces == nil {
		info.NetworkInterfaces = map[string]string{}
	}
	if sys.Model != "" {
		info.ModelName = sys.Model
	}
	if sys.Serial != "" {
		info.SerialNumber = sys.Serial
	}
	if sys.Revision == "" {
		return info
	}

	d, err := revision.Decode(sys.Revision)
	if err != nil {
		c.Logger.Warn("decode revision failed", "revision", sys.Revision, "error", err)
		info.RevisionCode = sys.Revision
		return info
	}
	info.Descriptor = d
	c.Logger.Debug("decoded revision", "revision", d.RevisionCode, "model", d.ModelType, "memory_mb", d.MemoryMB)
	return info
}
