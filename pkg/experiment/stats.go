package experiment

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/scottcagno/hashprobe/pkg/hashmap/openaddr"
	"github.com/scottcagno/hashprobe/pkg/util"
)

// Report holds the counters of one strategy's run
type Report struct {
	Strategy   openaddr.Strategy `json:"-"`
	Name       string            `json:"strategy"`
	Inserted   int               `json:"inserted"`
	Duplicates int               `json:"duplicates"`
	Probes     int               `json:"probes"`
	MaxProbes  int               `json:"max_probes"`
	Elapsed    time.Duration     `json:"elapsed"`
	DumpFile   string            `json:"dump_file,omitempty"`
}

// AvgProbes is the mean number of probes spent per newly inserted key
func (r *Report) AvgProbes() float64 {
	if r.Inserted == 0 {
		return 0
	}
	return float64(r.Probes) / float64(r.Inserted)
}

func (r *Report) String() string {
	var ss []string
	ss = append(ss, fmt.Sprintf("\tUsing %s", r.Strategy))
	ss = append(ss, fmt.Sprintf("\tInserted %d elements, of which %d were duplicates", r.Inserted+r.Duplicates, r.Duplicates))
	ss = append(ss, fmt.Sprintf("\tAvg. no. of probes = %.2f (max %d)", r.AvgProbes(), r.MaxProbes))
	ss = append(ss, "\t"+util.FormatDuration("Elapsed", r.Elapsed))
	if r.DumpFile != "" {
		ss = append(ss, fmt.Sprintf("\tSaved dump of hash table to %s", r.DumpFile))
	}
	return strings.Join(ss, "\n")
}

// Summary holds the result of a complete experiment
type Summary struct {
	RunID      string    `json:"run_id"`
	Input      string    `json:"input"`
	LoadFactor float64   `json:"load_factor"`
	Capacity   int       `json:"capacity"`
	NumObjects int       `json:"num_objects"`
	Reports    []*Report `json:"reports"`
}

func (s *Summary) String() string {
	var ss []string
	ss = append(ss, fmt.Sprintf("HashtableExperiment: Run %s", s.RunID))
	ss = append(ss, fmt.Sprintf("HashtableExperiment: Found a twin prime table capacity: %d", s.Capacity))
	ss = append(ss, fmt.Sprintf("HashtableExperiment: Input: %s\tLoadfactor: %.2f", s.Input, s.LoadFactor))
	ss = append(ss, fmt.Sprintf("HashtableExperiment: Keys to insert: %d", s.NumObjects))
	for _, r := range s.Reports {
		ss = append(ss, "")
		ss = append(ss, r.String())
	}
	return strings.Join(ss, "\n")
}

func (s *Summary) JSON() (string, error) {
	dat, err := json.MarshalIndent(s, "", "\t")
	if err != nil {
		return "", err
	}
	return string(dat), nil
}
