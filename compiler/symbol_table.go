package compiler

// GlobalScope is the only scope the semantic checker ever opens. Keys still carry the scope so
// that nested scopes can be added without changing the table.
const GlobalScope = "global"

type Symbol struct {
	Scope       string
	Name        string
	Type        string
	Line        int
	Initialized bool
	Used        bool
}

// Key is the scope qualified name the symbol is stored under.
func (symbol *Symbol) Key() string {
	return symbolKey(symbol.Scope, symbol.Name)
}

func symbolKey(scope, name string) string {
	return scope + ":" + name
}

// SymbolTable keeps variables in declaration order.
type SymbolTable struct {
	symbols map[string]*Symbol
	keys    []string
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{symbols: map[string]*Symbol{}}
}

func (table *SymbolTable) lookUp(scope, name string) *Symbol {
	return table.symbols[symbolKey(scope, name)]
}

// resolve looks name up in scope first, then in the global scope.
func (table *SymbolTable) resolve(scope, name string) *Symbol {
	if symbol := table.lookUp(scope, name); symbol != nil {
		return symbol
	}
	return table.lookUp(GlobalScope, name)
}

// declare adds symbol unless its key is taken, in which case it returns false.
func (table *SymbolTable) declare(symbol *Symbol) bool {
	key := symbol.Key()
	if _, ok := table.symbols[key]; ok {
		return false
	}
	table.symbols[key] = symbol
	table.keys = append(table.keys, key)
	return true
}

// Symbols returns the symbols in declaration order.
func (table *SymbolTable) Symbols() []*Symbol {
	symbols := make([]*Symbol, 0, len(table.keys))
	for _, key := range table.keys {
		symbols = append(symbols, table.symbols[key])
	}
	return symbols
}

// snapshot copies the table so later runs cannot change a returned result.
func (table *SymbolTable) snapshot() []*Symbol {
	symbols := make([]*Symbol, 0, len(table.keys))
	for _, key := range table.keys {
		symbol := *table.symbols[key]
		symbols = append(symbols, &symbol)
	}
	return symbols
}

type Parameter struct {
	Type string
	Name string
}

type Function struct {
	Name       string
	ReturnType string
	Line       int
	Parameters []*Parameter
	Used       bool
}

// FunctionTable keeps functions in declaration order.
type FunctionTable struct {
	functions map[string]*Function
	names     []string
}

func NewFunctionTable() *FunctionTable {
	return &FunctionTable{functions: map[string]*Function{}}
}

func (table *FunctionTable) lookUp(name string) *Function {
	return table.functions[name]
}

func (table *FunctionTable) declare(function *Function) bool {
	if _, ok := table.functions[function.Name]; ok {
		return false
	}
	table.functions[function.Name] = function
	table.names = append(table.names, function.Name)
	return true
}

// snapshot copies the functions in declaration order.
func (table *FunctionTable) snapshot() []*Function {
	functions := make([]*Function, 0, len(table.names))
	for _, name := range table.names {
		function := *table.functions[name]
		functions = append(functions, &function)
	}
	return functions
}
