package main

import (
	"log"
	"os"
	"path/filepath"

	"metro-chatbot-be/pkg/dialog/classify"

	"github.com/fatih/color"
)

// Trains the category classifier on the built-in corpus and writes the
// model file the server loads at startup.
func main() {
	outPath := os.Getenv("CLASSIFIER_MODEL_PATH")
	if outPath == "" {
		outPath = "models/category_model.json"
	}

	color.Cyan("🚀 Training category classifier")

	texts, labels := classify.TrainingData()
	color.Yellow("Corpus: %d labeled examples", len(texts))

	model, err := classify.Train(texts, labels)
	if err != nil {
		log.Fatalf("Error: training failed: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		log.Fatalf("Error: cannot create model directory: %v", err)
	}
	if err := model.Save(outPath); err != nil {
		log.Fatalf("Error: cannot write model: %v", err)
	}

	color.Green("Model written to %s (%d categories, %d tokens)", outPath, len(model.Categories), len(model.TokenLogP))
}
