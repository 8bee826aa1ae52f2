package mounts

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/disk"
)

// Mount is one mount table record.
type Mount struct {
	Device     string `json:"device" yaml:"device"`
	Mountpoint string `json:"mountpoint" yaml:"mountpoint"`
	Fstype     string `json:"fstype" yaml:"fstype"`
}

// Source enumerates the mount table. Implementations must read it fresh on
// every call.
type Source interface {
	Mounts(ctx context.Context) ([]Mount, error)
}

// System reads the mount table of the running host.
type System struct{}

// Mounts lists every mounted filesystem, including pseudo and network ones.
func (System) Mounts(ctx context.Context) ([]Mount, error) {
	parts, err := disk.PartitionsWithContext(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("reading mount table: %w", err)
	}
	out := make([]Mount, 0, len(parts))
	for _, p := range parts {
		out = append(out, Mount{Device: p.Device, Mountpoint: p.Mountpoint, Fstype: p.Fstype})
	}
	return out, nil
}

// Static is a fixed mount list.
type Static []Mount

// Mounts returns a copy of the list.
func (s Static) Mounts(context.Context) ([]Mount, error) {
	return append([]Mount(nil), s...), nil
}
