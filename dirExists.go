package main

import (
	"os"
	"strings"
)

// dirExists сообщает, является ли путь существующим каталогом.
// Обычный файл и отсутствующий путь дают false без ошибки,
// прочие ошибки os.Stat (нет доступа, недоступный сетевой ресурс) возвращаются вызывающему.
func dirExists(path string) (bool, error) {
	src, err := os.Stat(path)
	if err == nil {
		return src.IsDir(), nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}

	return false, err
}

// wellFormed - консервативная проверка текста пути до обращения к файловой системе.
// Пустая строка, NUL, завершающий разделитель и сегменты "." или ".." не допускаются,
// нормализация не выполняется.
func wellFormed(path string) bool {
	if path == "" || strings.ContainsRune(path, 0) {
		return false
	}
	if isRoot(path) {
		return true
	}
	if isSeparator(rune(path[len(path)-1])) {
		return false
	}
	for _, seg := range strings.FieldsFunc(path, isSeparator) {
		if seg == "." || seg == ".." {
			return false
		}
	}

	return true
}

// isRoot: "/", "\" или корень диска вида "C:\".
func isRoot(path string) bool {
	switch len(path) {
	case 1:
		return isSeparator(rune(path[0]))
	case 3:
		letter := path[0] | 0x20
		return letter >= 'a' && letter <= 'z' && path[1] == ':' && isSeparator(rune(path[2]))
	}
	return false
}

// Оба разделителя, т.к. значение может быть путем Windows или UNC.
func isSeparator(r rune) bool {
	return r == '/' || r == '\\'
}
