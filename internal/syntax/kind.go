package syntax

import "fmt"

// Kind enumerates concrete syntax node kinds.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindSourceFile
	KindError

	// items
	KindUseDeclaration
	KindModDefinition
	KindFunctionDefinition
	KindExternFunctionDeclaration
	KindStructDefinition
	KindStructField
	KindEnumDefinition
	KindEnumItem
	KindImplBlock
	KindAttribute
	KindParameterList
	KindParameter
	KindBlock

	// use clauses
	KindUseAsClause
	KindUseList
	KindScopedUseList

	// paths
	KindIdentifier
	KindTypeIdentifier
	KindScopedIdentifier
	KindScopedTypeIdentifier
	KindCrate
	KindSuper

	// types
	KindPrimitiveType
	KindNeverType
	KindPointerOf
	KindSliceOf
	KindArrayOf
	KindTupleType
	KindGenericType
	KindTypeArguments
	KindFunctionPointer
	KindParameterTypeList
	KindGenericArgumentList
	KindIntegerLiteral
)

var kindNames = [...]string{
	KindInvalid:                   "invalid",
	KindSourceFile:                "source_file",
	KindError:                     "ERROR",
	KindUseDeclaration:            "use_declaration",
	KindModDefinition:             "mod_definition",
	KindFunctionDefinition:        "function_definition",
	KindExternFunctionDeclaration: "extern_function_declaration",
	KindStructDefinition:          "struct_definition",
	KindStructField:               "struct_field",
	KindEnumDefinition:            "enum_definition",
	KindEnumItem:                  "enum_item",
	KindImplBlock:                 "impl_block",
	KindAttribute:                 "attribute",
	KindParameterList:             "parameter_list",
	KindParameter:                 "parameter",
	KindBlock:                     "block",
	KindUseAsClause:               "use_as_clause",
	KindUseList:                   "use_list",
	KindScopedUseList:             "scoped_use_list",
	KindIdentifier:                "identifier",
	KindTypeIdentifier:            "type_identifier",
	KindScopedIdentifier:          "scoped_identifier",
	KindScopedTypeIdentifier:      "scoped_type_identifier",
	KindCrate:                     "crate",
	KindSuper:                     "super",
	KindPrimitiveType:             "primitive_type",
	KindNeverType:                 "never_type",
	KindPointerOf:                 "pointer_of",
	KindSliceOf:                   "slice_of",
	KindArrayOf:                   "array_of",
	KindTupleType:                 "tuple_type",
	KindGenericType:               "generic_type",
	KindTypeArguments:             "type_arguments",
	KindFunctionPointer:           "function_pointer",
	KindParameterTypeList:         "parameter_type_list",
	KindGenericArgumentList:       "generic_argument_list",
	KindIntegerLiteral:            "integer_literal",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// IsPath reports whether nodes of this kind denote a path.
func (k Kind) IsPath() bool {
	switch k {
	case KindIdentifier, KindTypeIdentifier, KindScopedIdentifier, KindScopedTypeIdentifier, KindCrate, KindSuper:
		return true
	default:
		return false
	}
}

// Field names a child position inside its parent.
type Field uint8

const (
	FieldNone Field = iota
	FieldPath
	FieldName
	FieldAlias
	FieldItem
	FieldList
	FieldArgument
	FieldBody
	FieldType
	FieldParameters
	FieldParameter
	FieldReturnType
	FieldInner
	FieldSize
	FieldElement
	FieldTypeArguments
)

var fieldNames = [...]string{
	FieldNone:       "",
	FieldPath:       "path",
	FieldName:       "name",
	FieldAlias:      "alias",
	FieldItem:       "item",
	FieldList:       "list",
	FieldArgument:   "argument",
	FieldBody:       "body",
	FieldType:       "type",
	FieldParameters: "parameters",
	FieldParameter:  "parameter",
	FieldReturnType: "return_type",
	FieldInner:      "inner",
	FieldSize:       "size",
	FieldElement:    "element",

	FieldTypeArguments: "type_arguments",
}

func (f Field) String() string {
	if int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	return fmt.Sprintf("Field(%d)", f)
}
