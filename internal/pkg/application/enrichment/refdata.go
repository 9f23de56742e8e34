package enrichment

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

const maintenanceTimeLayout string = "2006-01-02 15:04"

type HostInfo struct {
	Team  string
	Owner string
}

type MaintenanceWindow struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls within the window, bounds included.
func (w MaintenanceWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

//go:generate moq -rm -out hostregistry_mock.go . HostRegistry
type HostRegistry interface {
	TeamOwner(ctx context.Context, host string) (HostInfo, bool)
	Maintenance(ctx context.Context, host string) (MaintenanceWindow, bool)
}

type fileRegistry struct {
	mu sync.Mutex

	teamOwnerFile   string
	maintenanceFile string

	ttl      time.Duration
	loadedAt time.Time

	teamOwners  map[string]HostInfo
	maintenance map[string]MaintenanceWindow
	now         func() time.Time
}

// NewHostRegistry returns a HostRegistry backed by two csv files, one
// mapping host to team/owner and one mapping host to a maintenance
// window. Files are re-read when a lookup arrives more than ttl after
// the previous load. A failed reload keeps the last good data.
func NewHostRegistry(teamOwnerFile, maintenanceFile string, ttl time.Duration) HostRegistry {
	return &fileRegistry{
		teamOwnerFile:   teamOwnerFile,
		maintenanceFile: maintenanceFile,
		ttl:             ttl,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

func (r *fileRegistry) TeamOwner(ctx context.Context, host string) (HostInfo, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.refresh(ctx)

	info, ok := r.teamOwners[host]
	return info, ok
}

func (r *fileRegistry) Maintenance(ctx context.Context, host string) (MaintenanceWindow, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.refresh(ctx)

	w, ok := r.maintenance[host]
	return w, ok
}

func (r *fileRegistry) refresh(ctx context.Context) {
	now := r.now()

	if r.teamOwners != nil && now.Sub(r.loadedAt) < r.ttl {
		return
	}

	log := logging.GetFromContext(ctx)

	teamOwners, err := loadFromFile(r.teamOwnerFile, parseTeamOwners)
	if err != nil {
		log.Warn("could not load team/owner reference data", "file", r.teamOwnerFile, "err", err.Error())
	} else {
		r.teamOwners = teamOwners
	}

	maintenance, err := loadFromFile(r.maintenanceFile, parseMaintenance)
	if err != nil {
		log.Warn("could not load maintenance reference data", "file", r.maintenanceFile, "err", err.Error())
	} else {
		r.maintenance = maintenance
	}

	r.loadedAt = now
}

func loadFromFile[T any](filename string, parse func(io.Reader) (map[string]T, error)) (map[string]T, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", filename, err)
	}
	defer f.Close()

	return parse(f)
}

// parseTeamOwners reads rows of host,team,owner (header row required)
func parseTeamOwners(data io.Reader) (map[string]HostInfo, error) {
	rows, idx, err := readCSV(data, "host", "team", "owner")
	if err != nil {
		return nil, err
	}

	result := make(map[string]HostInfo, len(rows))
	for _, row := range rows {
		result[row[idx["host"]]] = HostInfo{
			Team:  row[idx["team"]],
			Owner: row[idx["owner"]],
		}
	}

	return result, nil
}

// parseMaintenance reads rows of host,start_time,end_time with times
// formatted as "2006-01-02 15:04"
func parseMaintenance(data io.Reader) (map[string]MaintenanceWindow, error) {
	rows, idx, err := readCSV(data, "host", "start_time", "end_time")
	if err != nil {
		return nil, err
	}

	result := make(map[string]MaintenanceWindow, len(rows))
	for _, row := range rows {
		start, err := time.Parse(maintenanceTimeLayout, row[idx["start_time"]])
		if err != nil {
			return nil, fmt.Errorf("invalid start_time for host %s: %w", row[idx["host"]], err)
		}

		end, err := time.Parse(maintenanceTimeLayout, row[idx["end_time"]])
		if err != nil {
			return nil, fmt.Errorf("invalid end_time for host %s: %w", row[idx["host"]], err)
		}

		result[row[idx["host"]]] = MaintenanceWindow{Start: start, End: end}
	}

	return result, nil
}

func readCSV(data io.Reader, columns ...string) ([][]string, map[string]int, error) {
	r := csv.NewReader(data)

	rows, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("no header row")
	}

	idx := map[string]int{}
	for i, name := range rows[0] {
		idx[name] = i
	}

	for _, c := range columns {
		if _, ok := idx[c]; !ok {
			return nil, nil, fmt.Errorf("missing column %s", c)
		}
	}

	return rows[1:], idx, nil
}
