package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"campushire/screener/internal/api"
	"campushire/screener/internal/config"
	"campushire/screener/internal/controllers"
	"campushire/screener/internal/models"
	"campushire/screener/internal/view"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Run the interactive screener console",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		return runConsole(cfg)
	},
}

func runConsole(cfg *config.Config) error {
	term := view.NewTerminalView(os.Stdout, cfg.Client.MessageTTL)
	apiClient := api.NewClient(cfg.Client.APIBaseURL)

	nav := controllers.NewNavigation(term)
	upload := controllers.NewUpload(apiClient, term, cfg.Client.MaxFileSize, cfg.Client.RedirectDelay)
	upload.Attach(nav)
	defer upload.Close()

	nav.ShowSection(models.SectionDashboard)
	fmt.Println("Type `help` for the command list.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("\n%s> ", nav.Active())
		if !scanner.Scan() {
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		command, args := fields[0], fields[1:]

		switch command {
		case "quit", "exit":
			return nil
		case "help":
			printHelp()
		case "sections":
			for _, s := range models.Sections {
				fmt.Printf("  %-16s %s\n", s, s.Title())
			}
		case "goto":
			if len(args) != 1 {
				fmt.Println("usage: goto <section>")
				continue
			}
			nav.HandleAddressChange(args[0])
		case "job":
			if len(args) == 1 {
				upload.SelectJob(args[0])
				continue
			}
			if err := pickJob(upload); err != nil {
				fmt.Printf("job selection failed: %v\n", err)
			}
		case "upload":
			if len(args) == 0 {
				fmt.Println("usage: upload <file.xlsx> [more files...]")
				continue
			}
			upload.HandleFileSelection(args)
		case "files":
			term.ShowUploadedFiles(upload.UploadedFiles())
		case "remove":
			if len(args) != 1 {
				fmt.Println("usage: remove <n>")
				continue
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Println("usage: remove <n>")
				continue
			}
			upload.RemoveUploadedFile(n - 1)
		case "clear":
			upload.ClearUploadedFiles()
		case "analyze":
			upload.StartAnalysis()
		default:
			fmt.Printf("unknown command %q — type `help`\n", command)
		}
	}
}

// pickJob runs an interactive selection over the loaded postings,
// refreshing the catalog first when none are cached yet.
func pickJob(upload *controllers.Upload) error {
	postings := upload.JobPostings()
	if len(postings) == 0 {
		if err := upload.Init(); err != nil {
			return err
		}
		postings = upload.JobPostings()
	}
	if len(postings) == 0 {
		return fmt.Errorf("no job postings available")
	}

	items := make([]string, len(postings))
	for i, p := range postings {
		items[i] = fmt.Sprintf("%s — %s (%s)", p.Title, p.CampusLocation, p.PositionTypeName)
	}

	prompt := promptui.Select{
		Label: "Select a job posting",
		Items: items,
		Size:  10,
	}
	index, _, err := prompt.Run()
	if err != nil {
		return fmt.Errorf("selection aborted: %w", err)
	}

	upload.SelectJob(postings[index].ID)
	return nil
}

func printHelp() {
	fmt.Println(`Commands:
  sections              list the available sections
  goto <section>        switch to a section (e.g. goto upload)
  job                   pick a job posting interactively
  job <id>              select a job posting by id
  upload <files...>     upload resume spreadsheets (.xlsx/.xls)
  files                 list uploaded files
  remove <n>            remove the n-th uploaded file
  clear                 clear the upload session
  analyze               start the screening analysis
  quit                  exit the console`)
}
