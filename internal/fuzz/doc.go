// Package fuzztests houses Go fuzz harnesses for the front end
// (source -> lexer -> parser -> declaration walker). They guard against
// panics, hangs and malformed syntax trees on arbitrary inputs.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
