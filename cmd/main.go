package main

import (
	"flag"
	"log"
	"os"
	"tracker/internal/config"
	"tracker/internal/handler"
	"tracker/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	flag.StringVar(&cfg.ReportPath, "report", cfg.ReportPath, "file the progress report is saved to")
	flag.StringVar(&cfg.ImportPath, "import", cfg.ImportPath, "CSV file of students to load before the menu starts")
	flag.Parse()

	// Stdout belongs to the menu, so logs go to a file or stderr.
	log.SetPrefix("tracker: ")
	log.SetOutput(os.Stderr)
	if cfg.LogFile != "" {
		logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Fatal("Failed to open log file:", err)
		}
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Initialize services
	studentService := service.NewStudentService()
	importService := service.NewImportService(studentService)

	// Initialize handlers
	console := handler.NewConsole(os.Stdin, os.Stdout)
	studentHandler := handler.NewStudentHandler(studentService, console, cfg.ReportPath)
	importHandler := handler.NewImportHandler(importService, console)
	menu := handler.NewMenuHandler(console, studentHandler, importHandler)

	if cfg.ImportPath != "" {
		importHandler.Import(cfg.ImportPath)
	}

	if err := menu.Run(); err != nil {
		log.Fatal("Error reading input:", err)
	}
}
