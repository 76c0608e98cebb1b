package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/schedsim/schedsim/scheduler"
)

// runnerConfig is the JSON shape of a workload file.
type runnerConfig struct {
	Algorithm scheduler.Algorithm       `json:"algorithm"`
	Processes []scheduler.ProcessSpec   `json:"processes"`
	Quantum   int                       `json:"quantum,omitempty"`
	Workload  *scheduler.WorkloadConfig `json:"workload,omitempty"` // generate instead of listing processes
}

func main() {
	configFile := flag.String("config", "", "Path to JSON workload file")
	algorithm := flag.String("algorithm", "", "Override algorithm: fcfs, sjf, priority, rr")
	quantum := flag.Int("quantum", 0, "Override Round Robin quantum")
	random := flag.Int("random", 0, "Generate a random workload with N processes instead of reading a file")
	seed := flag.Int64("seed", 1, "Seed for -random")
	outputFile := flag.String("output", "", "Path to output JSON file (optional, table goes to stdout regardless)")
	flag.Parse()

	if *configFile == "" && *random == 0 {
		fmt.Fprintf(os.Stderr, "Usage: %s -config <workload.json> [-algorithm <name>] [-quantum <n>] [-output <results.json>]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "       %s -random <n> [-seed <n>] -algorithm <name> [-quantum <n>]\n", os.Args[0])
		os.Exit(1)
	}

	config, err := buildConfig(*configFile, *random, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building workload: %v\n", err)
		os.Exit(1)
	}

	if *algorithm != "" {
		algo, err := scheduler.ParseAlgorithm(*algorithm)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		config.Algorithm = algo
	}
	if *quantum > 0 {
		config.Quantum = *quantum
	}

	req := scheduler.Request{Processes: config.Processes, Quantum: config.Quantum}

	fmt.Fprintf(os.Stderr, "Scheduling %d processes with %s...\n", len(req.Processes), config.Algorithm)
	startTime := time.Now()
	result, err := scheduler.Schedule(config.Algorithm, req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Done in %v (%d dispatches, makespan %d)\n",
		time.Since(startTime), len(result.Order), result.Metrics.Makespan)

	outputTitle(os.Stdout, strings.ToUpper(config.Algorithm.String()))
	outputGantt(os.Stdout, result.Segments)
	outputSchedule(os.Stdout, req.Processes, result.Metrics)

	if *outputFile != "" {
		out, err := json.MarshalIndent(map[string]interface{}{
			"algorithm": config.Algorithm,
			"request":   req,
			"result":    result,
		}, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error marshaling results: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*outputFile, out, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Results written to %s\n", *outputFile)
	}
}

func buildConfig(path string, random int, seed int64) (runnerConfig, error) {
	if random > 0 {
		wc := scheduler.DefaultWorkloadConfig()
		wc.Count = random
		wc.Seed = seed
		req, err := scheduler.GenerateWorkload(wc)
		if err != nil {
			return runnerConfig{}, err
		}
		return runnerConfig{Algorithm: scheduler.AlgorithmFCFS, Processes: req.Processes, Quantum: 2}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return runnerConfig{}, fmt.Errorf("reading workload file: %w", err)
	}
	var config runnerConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return runnerConfig{}, fmt.Errorf("parsing workload JSON: %w", err)
	}
	if config.Workload != nil {
		req, err := scheduler.GenerateWorkload(*config.Workload)
		if err != nil {
			return runnerConfig{}, err
		}
		config.Processes = req.Processes
	}
	return config, nil
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)+4))
	_, _ = fmt.Fprintln(w, "|", title, "|")
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)+4))
}

func outputGantt(w io.Writer, segments []scheduler.Segment) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for _, seg := range segments {
		pid := fmt.Sprintf("P%d", seg.PID)
		padding := strings.Repeat(" ", (8-len(pid))/2)
		_, _ = fmt.Fprint(w, padding, pid, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i, seg := range segments {
		_, _ = fmt.Fprint(w, seg.Start, "\t")
		if i == len(segments)-1 {
			_, _ = fmt.Fprint(w, seg.End)
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func outputSchedule(w io.Writer, specs []scheduler.ProcessSpec, m *scheduler.Metrics) {
	byID := make(map[int]scheduler.ProcessSpec, len(specs))
	for _, spec := range specs {
		byID[spec.ID] = spec
	}

	rows := make([][]string, 0, len(m.PerProcess))
	for _, pm := range m.PerProcess {
		spec := byID[pm.PID]
		rows = append(rows, []string{
			fmt.Sprint(pm.PID),
			fmt.Sprint(spec.Priority),
			fmt.Sprint(spec.Burst),
			fmt.Sprint(spec.Arrival),
			fmt.Sprint(pm.WaitingTime),
			fmt.Sprint(pm.TurnaroundTime),
			fmt.Sprint(pm.Completion),
		})
	}

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", m.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", m.AverageTurnaroundTime),
		fmt.Sprintf("Throughput\n%.2f/t", m.Throughput)})
	table.Render()
}
