package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp> and writes every file there.
func NewWriter(root, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405.000Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

// Dir is the directory the writer stores files in.
func (w *Writer) Dir() string { return w.baseDir }

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "strategy", "depth", "simulations", "rollout_cutoff", "exploration", "evaluator", "seed"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Strategy,
			strconv.Itoa(config.Params.Depth),
			strconv.Itoa(config.Params.Simulations),
			strconv.Itoa(config.Params.RolloutCutoff),
			strconv.FormatFloat(config.Params.Exploration, 'f', -1, 64),
			config.Params.Evaluator,
			strconv.FormatUint(config.Params.Seed, 10),
		})
	}
	return w.write("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent1", "agent2", "starting_player", "winner", "black", "white", "start_time", "end_time", "duration", "total_moves"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			record.StartingPlayer,
			record.Winner,
			strconv.Itoa(record.Black),
			strconv.Itoa(record.White),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "move", "duration", "nodes", "evaluations", "episodes", "full_playouts"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player,
			record.Move,
			record.Duration.String(),
			strconv.FormatInt(record.Nodes, 10),
			strconv.FormatInt(record.Evaluations, 10),
			strconv.FormatInt(record.Episodes, 10),
			strconv.FormatInt(record.FullPlayouts, 10),
		})
	}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	// Create a file
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}

type moveRow struct {
	Game         int64  `parquet:"game"`
	Step         int64  `parquet:"step"`
	Player       string `parquet:"player,dict"`
	Move         string `parquet:"move,dict"`
	DurationNs   int64  `parquet:"duration_ns"`
	Nodes        int64  `parquet:"nodes"`
	Evaluations  int64  `parquet:"evaluations"`
	Episodes     int64  `parquet:"episodes"`
	FullPlayouts int64  `parquet:"full_playouts"`
}

// WriteMoveParquet stores move records as a zstd-compressed parquet file for bulk analysis.
func (w *Writer) WriteMoveParquet(records []MoveRecord) error {
	rows := make([]moveRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, moveRow{
			Game:         int64(record.Game),
			Step:         int64(record.Step),
			Player:       record.Player,
			Move:         record.Move,
			DurationNs:   record.Duration.Nanoseconds(),
			Nodes:        record.Nodes,
			Evaluations:  record.Evaluations,
			Episodes:     record.Episodes,
			FullPlayouts: record.FullPlayouts,
		})
	}

	path := filepath.Join(w.baseDir, "move_records.parquet")
	err := parquet.WriteFile(path, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", "move_record_v1"),
	)
	if err != nil {
		return fmt.Errorf("failed to write move records parquet: %w", err)
	}
	return nil
}
