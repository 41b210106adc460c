package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Лексические
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003

	// Парсерные
	SynUnexpectedToken    Code = 2001
	SynUnclosedBrace      Code = 2002
	SynExpectSemicolon    Code = 2003
	SynExpectIdentifier   Code = 2004
	SynExpectPath         Code = 2005
	SynExpectType         Code = 2006
	SynUnexpectedTopLevel Code = 2007
	SynEmptyUseList       Code = 2008

	// Разрешение имён
	ResCrateNotAllowed  Code = 3001
	ResSuperNotAllowed  Code = 3002
	ResDuplicateName    Code = 3003
	ResUnresolvedPath   Code = 3004
	ResUnexpectedNode   Code = 3005
	ResAliasCycle       Code = 3006
	ResNotAModule       Code = 3007
	ResShadowedAliasUse Code = 3008
	ResInvalidCrateName Code = 3009

	// Ошибки I/O
	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	SynUnexpectedToken:          "Unexpected token",
	SynUnclosedBrace:            "Unclosed brace",
	SynExpectSemicolon:          "Missing semicolon",
	SynExpectIdentifier:         "Expected identifier",
	SynExpectPath:               "Expected path",
	SynExpectType:               "Expected type",
	SynUnexpectedTopLevel:       "Unexpected top-level construct",
	SynEmptyUseList:             "Empty use list",
	ResCrateNotAllowed:          "`crate` is not allowed here",
	ResSuperNotAllowed:          "`super` is not allowed here",
	ResDuplicateName:            "Duplicate name in scope",
	ResUnresolvedPath:           "Unresolved path",
	ResUnexpectedNode:           "Unexpected syntax node",
	ResAliasCycle:               "Alias cycle",
	ResNotAModule:               "Path segment is not a module",
	ResShadowedAliasUse:         "Alias shadows an outer name",
	ResInvalidCrateName:         "Crate name is not an identifier",
	IOLoadFileError:             "I/O load file error",
}

// ID is the stable short identifier, e.g. RES3001.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("RES%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
