package cmd

import (
	"fmt"
	"github.com/fzft/go-probing-set/deps/linenoise"
	"github.com/fzft/go-probing-set/hashset"
	"github.com/fzft/go-probing-set/log"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"os"
	"strconv"
	"strings"
)

var (
	ProbeSetHisFileEnv     = "PROBESET_HISTFILE"
	ProbeSetHisFileDefault = ".probeset_history"
)

// Cli drives a ProbingStringSet interactively. It talks to the table through
// its exported methods only.
type Cli struct {
	set     *hashset.ProbingStringSet
	version string
}

func NewCli(version string) *Cli {
	return &Cli{
		set:     hashset.New(),
		version: version,
	}
}

// Run starts the read-eval-print loop and blocks until the user quits or
// input is exhausted.
func (cli *Cli) Run() {
	defer linenoise.Line.Close()

	var (
		history     bool
		historyFile string
	)

	if isatty.IsTerminal(os.Stdin.Fd()) {
		historyFile = getDotfilePath(ProbeSetHisFileEnv, ProbeSetHisFileDefault)
		// keep in-memory history always regardless if history file can be determined
		history = true
		if historyFile != "" {
			linenoise.Line.HistoryLoad(historyFile)
		}
	}

	fmt.Printf("probeset %s\ntype 'help' for the command list\n", cli.version)

	for {
		line, err := linenoise.Line.Prompt("probeset> ")
		if err != nil {
			break
		}

		argv := strings.Fields(line)
		if len(argv) == 0 {
			continue
		}

		if history {
			linenoise.Line.AppendHistory(line)
		}
		if historyFile != "" {
			if err := linenoise.Line.HistorySave(historyFile); err != nil {
				log.Logger.Warn("cannot save history", zap.String("file", historyFile), zap.Error(err))
				historyFile = ""
			}
		}

		if !cli.dispatch(argv[0], argv[1:]) {
			break
		}
	}
}

// dispatch runs one command. It returns false when the loop should stop.
func (cli *Cli) dispatch(cmd string, args []string) bool {
	switch strings.ToLower(cmd) {
	case "add":
		if len(args) == 0 {
			fmt.Println("usage: add <value> [<value> ...]")
			break
		}
		for _, v := range args {
			fmt.Printf("%s: %s\n", v, cli.set.Add(v))
		}
	case "remove", "del":
		if len(args) == 0 {
			fmt.Println("usage: remove <value> [<value> ...]")
			break
		}
		for _, v := range args {
			fmt.Printf("%s: %s\n", v, cli.set.Remove(v))
		}
	case "search", "contains":
		if len(args) == 0 {
			fmt.Println("usage: search <value> [<value> ...]")
			break
		}
		for _, v := range args {
			fmt.Printf("%s: %v\n", v, cli.set.Search(v))
		}
	case "hash":
		if len(args) != 1 {
			fmt.Println("usage: hash <value>")
			break
		}
		index, err := cli.set.Hash(args[0])
		if err != nil {
			fmt.Println(err)
			break
		}
		fmt.Println(index)
	case "resize":
		if len(args) != 1 {
			fmt.Println("usage: resize <capacity>")
			break
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Printf("resize: %q is not an integer\n", args[0])
			break
		}
		fmt.Println(cli.set.Resize(n))
	case "print":
		fmt.Println(cli.set.DebugString())
	case "len":
		fmt.Printf("%d values in %d slots\n", cli.set.Len(), cli.set.Capacity())
	case "help":
		cli.printHelp()
	case "quit", "exit":
		return false
	default:
		fmt.Printf("unknown command %q, try 'help'\n", cmd)
	}
	return true
}

func (cli *Cli) printHelp() {
	fmt.Print(`add <value> ...       insert values into the set
remove <value> ...    tombstone values (alias: del)
search <value> ...    report membership (alias: contains)
hash <value>          home index of a value in the current table
resize <capacity>     change the table capacity
print                 dump every slot in index order
len                   value count and capacity
quit                  leave (alias: exit)
`)
}

// getDotfilePath resolves a dotfile next to $HOME, honoring an env var
// override. An override of /dev/null disables the file entirely.
func getDotfilePath(envOverride, dotFilename string) string {
	var dotPath string

	path := os.Getenv(envOverride)
	if path != "" {
		if path == "/dev/null" {
			return ""
		}
		dotPath = path
	} else {
		home := os.Getenv("HOME")
		if home != "" {
			dotPath = fmt.Sprintf("%s/%s", home, dotFilename)
		}
	}
	return dotPath
}
