// Package fuzztests houses Go fuzz harnesses for the scanning pipeline
// (source -> lexer -> parser). They guard against panics and broken token
// invariants on arbitrary inputs.
//
// Назначение: загружать байты в FileSet и прогонять их через лексер/парсер.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
