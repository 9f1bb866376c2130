package terminal

import (
	"regexp"
	"strings"
)

// CommandType 命令类型
type CommandType int

const (
	CommandTypeUnknown CommandType = iota
	CommandTypeHelp
	CommandTypeClear
	CommandTypeProjects
	CommandTypeList
	CommandTypeSearch
	CommandTypeFilter
	CommandTypeView
	CommandTypeProjectID
	CommandTypeStats
	CommandTypeMentors
	CommandTypeApply
	CommandTypeShortcuts
	CommandTypeMatrix
	CommandTypeCoffee
	CommandTypeFortune
	CommandTypeHack
	CommandTypeCowsay
	CommandTypeColors
	CommandTypeKonami
	CommandTypeAbout
	CommandTypeEasterEgg
)

// Command 解析后的命令
type Command struct {
	Type CommandType
	Raw  string
	// Name 第一个词，转为小写
	Name string
	// Args 其余参数，保留原始大小写
	Args []string
}

// Arg 返回第 i 个参数，不存在时返回空字符串
func (c *Command) Arg(i int) string {
	if i < len(c.Args) {
		return c.Args[i]
	}
	return ""
}

// Rest 用单个空格连接所有参数
func (c *Command) Rest() string {
	return strings.Join(c.Args, " ")
}

// HasArg 检查是否包含指定参数（忽略大小写）
func (c *Command) HasArg(name string) bool {
	for _, a := range c.Args {
		if strings.EqualFold(a, name) {
			return true
		}
	}
	return false
}

// CommandParser 命令解析器，处理命令名及别名
type CommandParser struct {
	aliases   map[string]CommandType
	projectID *regexp.Regexp
}

func NewCommandParser() *CommandParser {
	parser := &CommandParser{}
	parser.initializeAliases()
	return parser
}

func (p *CommandParser) initializeAliases() {
	table := []struct {
		names []string
		typ   CommandType
	}{
		{[]string{"help", "h", "?"}, CommandTypeHelp},
		{[]string{"clear", "cls", "c"}, CommandTypeClear},
		{[]string{"projects", "p", "ls"}, CommandTypeProjects},
		{[]string{"list"}, CommandTypeList},
		{[]string{"search", "s"}, CommandTypeSearch},
		{[]string{"filter", "f"}, CommandTypeFilter},
		{[]string{"view", "v"}, CommandTypeView},
		{[]string{"stats"}, CommandTypeStats},
		{[]string{"mentors", "m"}, CommandTypeMentors},
		{[]string{"apply", "a"}, CommandTypeApply},
		{[]string{"shortcuts", "keys", "hotkeys"}, CommandTypeShortcuts},
		{[]string{"matrix"}, CommandTypeMatrix},
		{[]string{"coffee", "caffeine"}, CommandTypeCoffee},
		{[]string{"fortune"}, CommandTypeFortune},
		{[]string{"hack", "hacker"}, CommandTypeHack},
		{[]string{"cowsay"}, CommandTypeCowsay},
		{[]string{"colors", "colors!"}, CommandTypeColors},
		{[]string{"konami"}, CommandTypeKonami},
		{[]string{"about"}, CommandTypeAbout},
		{[]string{"easteregg", "eastereggs"}, CommandTypeEasterEgg},
	}

	p.aliases = make(map[string]CommandType)
	for _, row := range table {
		for _, name := range row.names {
			p.aliases[name] = row.typ
		}
	}
	p.projectID = regexp.MustCompile(`^\d+$`)
}

// Parse 解析输入行，空行返回 nil
func (p *CommandParser) Parse(input string) *Command {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}

	fields := strings.Fields(input)
	cmd := &Command{
		Raw:  input,
		Name: strings.ToLower(fields[0]),
		Args: fields[1:],
	}

	if typ, ok := p.aliases[cmd.Name]; ok {
		cmd.Type = typ
	} else if p.projectID.MatchString(cmd.Name) {
		cmd.Type = CommandTypeProjectID
	}
	return cmd
}

// FormatCommandType 格式化命令类型名称，用于日志和统计
func FormatCommandType(cmdType CommandType) string {
	switch cmdType {
	case CommandTypeHelp:
		return "help"
	case CommandTypeClear:
		return "clear"
	case CommandTypeProjects:
		return "projects"
	case CommandTypeList:
		return "list"
	case CommandTypeSearch:
		return "search"
	case CommandTypeFilter:
		return "filter"
	case CommandTypeView, CommandTypeProjectID:
		return "view"
	case CommandTypeStats:
		return "stats"
	case CommandTypeMentors:
		return "mentors"
	case CommandTypeApply:
		return "apply"
	case CommandTypeShortcuts:
		return "shortcuts"
	case CommandTypeMatrix:
		return "matrix"
	case CommandTypeCoffee:
		return "coffee"
	case CommandTypeFortune:
		return "fortune"
	case CommandTypeHack:
		return "hack"
	case CommandTypeCowsay:
		return "cowsay"
	case CommandTypeColors:
		return "colors"
	case CommandTypeKonami:
		return "konami"
	case CommandTypeAbout:
		return "about"
	case CommandTypeEasterEgg:
		return "easteregg"
	default:
		return "unknown"
	}
}
