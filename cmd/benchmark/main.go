// Command benchmark measures /api/summarize latency for each configured provider.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

type modelInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Provider string `json:"provider"`
}

type summarizeRequest struct {
	Text     string `json:"text"`
	Provider string `json:"provider"`
}

type summarizeResponse struct {
	Summary   string `json:"summary"`
	Provider  string `json:"provider"`
	ElapsedMs int64  `json:"elapsed_ms"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type result struct {
	Sample    string `json:"sample"`
	Provider  string `json:"provider"`
	Run       int    `json:"run"`
	InChars   int    `json:"in_chars"`
	OutChars  int    `json:"out_chars"`
	ElapsedMs int64  `json:"elapsed_ms"`
	WallMs    int64  `json:"wall_ms"`
	Summary   string `json:"summary,omitempty"`
	Error     string `json:"error,omitempty"`
}

type runner struct {
	client  *http.Client
	baseURL string
}

func main() {
	url := flag.String("url", "http://localhost:8501", "summaryapp base URL")
	runs := flag.Int("runs", 3, "runs per sample and provider")
	provider := flag.String("provider", "", "provider id (default: every provider listed by /api/models)")
	quality := flag.Bool("quality", false, "print each summary next to its input instead of timings")
	concurrency := flag.Int("concurrency", 1, "requests in flight at once")
	jsonOut := flag.String("json", "", "write results to this JSON file")
	flag.Parse()

	r := &runner{
		client:  &http.Client{Timeout: 180 * time.Second},
		baseURL: strings.TrimRight(*url, "/"),
	}
	ctx := context.Background()

	providers := []string{*provider}
	if *provider == "" {
		var err error
		if providers, err = r.providers(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "benchmark: %v\n", err)
			os.Exit(1)
		}
	}

	samples, n := Samples, *runs
	if *quality {
		samples, n = QualitySamples, 1
	}

	fmt.Printf("Benchmarking %s with %s (%d samples, %d runs each)\n", r.baseURL, strings.Join(providers, ", "), len(samples), n)
	results := r.run(ctx, providers, samples, n, *concurrency)

	if *quality {
		printQuality(os.Stdout, results)
	} else {
		printTable(os.Stdout, results)
		printStats(os.Stdout, summarizeStats(results))
	}

	if *jsonOut != "" {
		if err := writeJSON(*jsonOut, r.baseURL, results); err != nil {
			fmt.Fprintf(os.Stderr, "benchmark: write json: %v\n", err)
		} else {
			fmt.Printf("\nResults written to %s\n", *jsonOut)
		}
	}

	for _, res := range results {
		if res.Error != "" {
			os.Exit(1)
		}
	}
}

func (r *runner) providers(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/api/models", nil)
	if err != nil {
		return nil, err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch models: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("models endpoint returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var models []modelInfo
	if err := json.NewDecoder(resp.Body).Decode(&models); err != nil {
		return nil, fmt.Errorf("decode models: %w", err)
	}
	if len(models) == 0 {
		return nil, errors.New("no providers available")
	}

	ids := make([]string, 0, len(models))
	for _, m := range models {
		ids = append(ids, m.ID)
	}
	return ids, nil
}

// run executes every (provider, sample, run) combination with at most limit
// requests in flight. Results come back in submission order.
func (r *runner) run(ctx context.Context, providers []string, samples []Sample, runs, limit int) []result {
	type job struct {
		provider string
		sample   Sample
		run      int
	}
	var jobs []job
	for _, p := range providers {
		for _, s := range samples {
			for i := 1; i <= runs; i++ {
				jobs = append(jobs, job{p, s, i})
			}
		}
	}

	results := make([]result, len(jobs))
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	if limit < 1 {
		limit = 1
	}
	g.SetLimit(limit)

	for i, j := range jobs {
		g.Go(func() error {
			res := r.summarize(gctx, j.provider, j.sample, j.run)
			mu.Lock()
			fmt.Printf("  %s/%s run %d: %s\n", j.provider, j.sample.Name, j.run, res.status())
			mu.Unlock()
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (r *runner) summarize(ctx context.Context, provider string, sample Sample, run int) result {
	res := result{Sample: sample.Name, Provider: provider, Run: run, InChars: len(sample.Text)}

	payload, err := json.Marshal(summarizeRequest{Text: sample.Text, Provider: provider})
	if err != nil {
		res.Error = err.Error()
		return res
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/api/summarize", strings.NewReader(string(payload)))
	if err != nil {
		res.Error = err.Error()
		return res
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := r.client.Do(req)
	res.WallMs = time.Since(start).Milliseconds()
	if err != nil {
		res.Error = err.Error()
		return res
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var er errorResponse
		body, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(body, &er) == nil && er.Error != "" {
			res.Error = fmt.Sprintf("HTTP %d: %s", resp.StatusCode, er.Error)
		} else {
			res.Error = fmt.Sprintf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
		}
		return res
	}

	var sr summarizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		res.Error = err.Error()
		return res
	}
	res.Summary = sr.Summary
	res.OutChars = len(sr.Summary)
	res.ElapsedMs = sr.ElapsedMs
	return res
}

func (r result) status() string {
	if r.Error != "" {
		return "FAILED (" + r.Error + ")"
	}
	return fmt.Sprintf("%dms", r.ElapsedMs)
}

type providerStats struct {
	Provider string
	OK       int
	Failed   int
	MinMs    int64
	MaxMs    int64
	AvgMs    float64
	Ratio    float64
}

// summarizeStats groups results per provider. Ratio is output chars over input chars.
func summarizeStats(results []result) []providerStats {
	byProvider := make(map[string]*providerStats)
	totalMs := make(map[string]int64)
	inChars, outChars := make(map[string]int), make(map[string]int)

	for _, r := range results {
		s, ok := byProvider[r.Provider]
		if !ok {
			s = &providerStats{Provider: r.Provider}
			byProvider[r.Provider] = s
		}
		if r.Error != "" {
			s.Failed++
			continue
		}
		if s.OK == 0 || r.ElapsedMs < s.MinMs {
			s.MinMs = r.ElapsedMs
		}
		if r.ElapsedMs > s.MaxMs {
			s.MaxMs = r.ElapsedMs
		}
		s.OK++
		totalMs[r.Provider] += r.ElapsedMs
		inChars[r.Provider] += r.InChars
		outChars[r.Provider] += r.OutChars
	}

	stats := make([]providerStats, 0, len(byProvider))
	for p, s := range byProvider {
		if s.OK > 0 {
			s.AvgMs = float64(totalMs[p]) / float64(s.OK)
		}
		if inChars[p] > 0 {
			s.Ratio = float64(outChars[p]) / float64(inChars[p])
		}
		stats = append(stats, *s)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Provider < stats[j].Provider })
	return stats
}

func printTable(w io.Writer, results []result) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Provider | Sample | Run | In | Out | Elapsed (ms) | Wall (ms) |")
	fmt.Fprintln(w, "|----------|--------|-----|----|-----|--------------|-----------|")
	for _, r := range results {
		if r.Error != "" {
			fmt.Fprintf(w, "| %-8s | %-8s | %d | %5d | %5s | %12s | %9s |\n", r.Provider, r.Sample, r.Run, r.InChars, "-", "FAIL", "-")
			continue
		}
		fmt.Fprintf(w, "| %-8s | %-8s | %d | %5d | %5d | %12d | %9d |\n", r.Provider, r.Sample, r.Run, r.InChars, r.OutChars, r.ElapsedMs, r.WallMs)
	}
}

func printStats(w io.Writer, stats []providerStats) {
	fmt.Fprintln(w, "\nPer provider:")
	for _, s := range stats {
		if s.OK == 0 {
			fmt.Fprintf(w, "- %s: all %d runs failed\n", s.Provider, s.Failed)
			continue
		}
		fmt.Fprintf(w, "- %s: avg %.0fms, min %dms, max %dms, out/in %.2f (%d ok, %d failed)\n",
			s.Provider, s.AvgMs, s.MinMs, s.MaxMs, s.Ratio, s.OK, s.Failed)
	}
}

func printQuality(w io.Writer, results []result) {
	bySample := make(map[string][]result)
	var order []string
	for _, r := range results {
		if _, seen := bySample[r.Sample]; !seen {
			order = append(order, r.Sample)
		}
		bySample[r.Sample] = append(bySample[r.Sample], r)
	}

	for _, name := range order {
		fmt.Fprintf(w, "\n--- %s ---\n", name)
		for _, r := range bySample[name] {
			if r.Error != "" {
				fmt.Fprintf(w, "%s ERR: %s\n", r.Provider, r.Error)
				continue
			}
			fmt.Fprintf(w, "%s: %s\n     [%dms, %d->%d chars]\n", r.Provider, r.Summary, r.ElapsedMs, r.InChars, r.OutChars)
		}
	}
}

type jsonReport struct {
	Timestamp string   `json:"timestamp"`
	URL       string   `json:"url"`
	Results   []result `json:"results"`
}

func writeJSON(path, baseURL string, results []result) error {
	data, err := json.MarshalIndent(jsonReport{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		URL:       baseURL,
		Results:   results,
	}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
