package server

import (
	"hash/fnv"
	"log"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"campushire/screener/internal/models"
)

type Worker interface {
	Start()
	Stop()
	Analyze(session *models.UploadSession) []models.AnalysisResult
}

type analysisTask struct {
	file  models.FileRecord
	reply chan<- models.AnalysisResult
}

type worker struct {
	concurrency int
	tasks       chan analysisTask
	wg          sync.WaitGroup
	stopChan    chan struct{}
}

func NewWorker(concurrency int) Worker {
	return &worker{
		concurrency: concurrency,
		tasks:       make(chan analysisTask, 100),
		stopChan:    make(chan struct{}),
	}
}

// Start implements Worker.
func (w *worker) Start() {
	log.Printf("🚀 Starting analysis worker with %d concurrent workers\n", w.concurrency)

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processTasks(i + 1)
	}
}

// Stop implements Worker.
func (w *worker) Stop() {
	log.Println("🛑 Stopping analysis worker...")
	close(w.stopChan)
	w.wg.Wait()
	log.Println("✅ Analysis worker stopped")
}

// Analyze fans the session's files out to the pool and gathers one
// result per file, highest match first.
func (w *worker) Analyze(session *models.UploadSession) []models.AnalysisResult {
	replies := make(chan models.AnalysisResult, len(session.Files))

	submitted := 0
	for _, file := range session.Files {
		select {
		case w.tasks <- analysisTask{file: file, reply: replies}:
			submitted++
		case <-w.stopChan:
			log.Printf("⚠️  Worker stopped, skipping analysis for %s\n", file.Name)
		}
	}

	results := make([]models.AnalysisResult, 0, submitted)
	for i := 0; i < submitted; i++ {
		results = append(results, <-replies)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})

	return results
}

func (w *worker) processTasks(workerID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			log.Printf("👷 Analysis worker #%d stopped\n", workerID)
			return
		case task := <-w.tasks:
			task.reply <- analyzeFile(task.file)
		}
	}
}

// analyzeFile synthesizes a deterministic result row for a file. Real
// resume scoring lives in the production backend; the local backend
// only needs stable, plausible values for the workflow.
func analyzeFile(file models.FileRecord) models.AnalysisResult {
	return models.AnalysisResult{
		Name:       candidateName(file.Name),
		MatchScore: matchScore(file.Name),
		FileName:   file.Name,
		Summary:    "Screened from " + file.Name,
	}
}

func candidateName(filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	base = strings.NewReplacer("_", " ", "-", " ", ".", " ").Replace(base)
	words := strings.Fields(base)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	if len(words) == 0 {
		return "Unknown Candidate"
	}
	return strings.Join(words, " ")
}

// matchScore maps a filename onto a stable score in [60, 96).
func matchScore(filename string) float64 {
	h := fnv.New32a()
	h.Write([]byte(strings.ToLower(filename)))
	return float64(60 + h.Sum32()%36)
}
