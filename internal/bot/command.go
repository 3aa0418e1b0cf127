package bot

// Kind identifies a chat command. Parsing to a closed enum (instead of
// dispatching on raw strings) keeps the dispatcher switch exhaustive:
// adding a command means adding a Kind, a token mapping, and a case.
type Kind int

const (
	KindUnknown Kind = iota
	KindIncome
	KindExpense
	KindAddCategory
	KindEditCategory
	KindDeleteCategory
	KindAsset
	KindDelete
	KindListAll
	KindHistory
	KindSummary
	KindReport
	KindHelp
)

// Command is a parsed inbound message: the command kind plus its raw
// argument fields (0-2 elements, the second being the rest of the line).
type Command struct {
	Kind  Kind
	Token string
	Args  []string
}

var commandKinds = map[string]Kind{
	"/income":         KindIncome,
	"/expense":        KindExpense,
	"/addcategory":    KindAddCategory,
	"/editcategory":   KindEditCategory,
	"/deletecategory": KindDeleteCategory,
	"/asset":          KindAsset,
	"/aset":           KindAsset,
	"/delete":         KindDelete,
	"/listall":        KindListAll,
	"/history":        KindHistory,
	"/summary":        KindSummary,
	"/report":         KindReport,
	"/help":           KindHelp,
}

// Parse turns raw message text into a Command.
func Parse(text string) Command {
	token, args := ParseCommand(text)
	return Command{Kind: commandKinds[token], Token: token, Args: args}
}
