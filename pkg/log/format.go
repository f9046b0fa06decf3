package log

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// TimeFormat 时间戳格式，等同于 C 的 %c
const TimeFormat = time.ANSIC

// formatMessage 格式化消息；不匹配时返回兜底文本和格式化错误
//
// 逐个解析格式串中的动词，每个参数只格式化一次，
// 缺参数、多参数、坏索引、坏宽度和类型不符都按结构判断，不依赖输出文本。
func formatMessage(format string, args ...any) (string, *SinkError) {
	if len(args) == 0 && !strings.Contains(format, "%") {
		return format, nil
	}

	s := &formatScanner{args: args}
	s.scan(format)
	rendered := s.out.String()
	if !s.bad {
		return rendered, nil
	}

	malformedMessages.Inc()
	ferr := NewFormatError(format, rendered)
	return "malformed log message: " + ferr.Message, ferr
}

// fmt 对宽度和精度的上限
const maxWidth = 1e6

type formatScanner struct {
	args      []any
	argNum    int
	reordered bool
	badIndex  bool
	bad       bool
	out       strings.Builder
}

func (s *formatScanner) fail(marker string) {
	s.bad = true
	s.out.WriteString(marker)
}

func (s *formatScanner) scan(format string) {
	for i := 0; i < len(format); {
		j := strings.IndexByte(format[i:], '%')
		if j < 0 {
			s.out.WriteString(format[i:])
			break
		}
		s.out.WriteString(format[i : i+j])
		i = s.directive(format, i+j+1)
	}

	if !s.reordered && s.argNum < len(s.args) {
		s.bad = true
		s.out.WriteString("%!(EXTRA ")
		for k, arg := range s.args[s.argNum:] {
			if k > 0 {
				s.out.WriteString(", ")
			}
			if arg == nil {
				s.out.WriteString("<nil>")
				continue
			}
			fmt.Fprintf(&s.out, "%T=%v", arg, arg)
		}
		s.out.WriteString(")")
	}
}

// directive 处理 % 之后的一个动词，返回下一个位置
func (s *formatScanner) directive(format string, i int) int {
	s.badIndex = false
	var spec strings.Builder
	spec.WriteByte('%')

	for i < len(format) && strings.IndexByte("+-# 0", format[i]) >= 0 {
		spec.WriteByte(format[i])
		i++
	}

	i = s.index(format, i)
	if i < len(format) && format[i] == '*' {
		i++
		if w, ok := s.intArg(); ok {
			if w < 0 {
				spec.WriteByte('-')
				w = -w
			}
			spec.WriteString(strconv.Itoa(w))
		} else {
			s.fail("%!(BADWIDTH)")
		}
		i = s.index(format, i)
	} else {
		i = copyDigits(&spec, format, i)
	}

	if i < len(format) && format[i] == '.' {
		i++
		i = s.index(format, i)
		if i < len(format) && format[i] == '*' {
			i++
			if p, ok := s.intArg(); !ok {
				s.fail("%!(BADPREC)")
			} else if p >= 0 {
				spec.WriteString("." + strconv.Itoa(p))
			}
			i = s.index(format, i)
		} else {
			spec.WriteByte('.')
			i = copyDigits(&spec, format, i)
		}
	}

	if i >= len(format) {
		s.fail("%!(NOVERB)")
		return i
	}
	verb, size := utf8.DecodeRuneInString(format[i:])
	i += size

	switch {
	case verb == '%':
		s.out.WriteByte('%')
	case s.badIndex:
		s.fail("%!" + string(verb) + "(BADINDEX)")
	case s.argNum >= len(s.args):
		s.fail("%!" + string(verb) + "(MISSING)")
	default:
		arg := s.args[s.argNum]
		s.argNum++
		piece := fmt.Sprintf(spec.String()+string(verb), arg)
		if badVerb(piece, verb, arg) {
			s.bad = true
		}
		s.out.WriteString(piece)
	}
	return i
}

// index 解析可选的 [n] 参数索引
func (s *formatScanner) index(format string, i int) int {
	if i >= len(format) || format[i] != '[' {
		return i
	}
	s.reordered = true
	end := strings.IndexByte(format[i:], ']')
	if end < 0 {
		s.badIndex = true
		return i + 1
	}
	n, err := strconv.Atoi(format[i+1 : i+end])
	if err != nil || n < 1 || n > len(s.args) {
		s.badIndex = true
	} else {
		s.argNum = n - 1
	}
	return i + end + 1
}

// intArg 取出 * 对应的整数参数
func (s *formatScanner) intArg() (int, bool) {
	if s.badIndex || s.argNum >= len(s.args) {
		return 0, false
	}
	v := reflect.ValueOf(s.args[s.argNum])
	s.argNum++

	var n int64
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n = v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if v.Uint() > maxWidth {
			return 0, false
		}
		n = int64(v.Uint())
	default:
		return 0, false
	}
	if n > maxWidth || n < -maxWidth {
		return 0, false
	}
	return int(n), true
}

func copyDigits(spec *strings.Builder, format string, i int) int {
	for i < len(format) && format[i] >= '0' && format[i] <= '9' {
		spec.WriteByte(format[i])
		i++
	}
	return i
}

// badVerb 判断单个动词的输出是否是 fmt 的错误标记，如 %!d(string=x)
func badVerb(piece string, verb rune, arg any) bool {
	prefix := "%!" + string(verb) + "("
	if !strings.HasPrefix(piece, prefix) {
		return false
	}
	switch arg.(type) {
	case nil:
		return piece == prefix+"<nil>)"
	case string, []byte:
		// 字符串用这些动词不会类型不符，输出只是参数本身
		if strings.ContainsRune("svqxX", verb) {
			return false
		}
	}
	rest := piece[len(prefix):]
	return strings.HasPrefix(rest, "PANIC=") || strings.HasPrefix(rest, reflect.TypeOf(arg).String()+"=")
}

// renderLine 生成一行完整日志（含换行）
func renderLine(now time.Time, level Severity, loc *Location, message string) string {
	var b strings.Builder
	b.Grow(len(message) + 64)
	b.WriteString("[")
	b.WriteString(now.Format(TimeFormat))
	b.WriteString("]\t")
	b.WriteString(level.Label())
	b.WriteString("\t")
	b.WriteString(message)
	if loc != nil {
		b.WriteString("\t")
		b.WriteString(loc.String())
	}
	b.WriteString("\n")
	return b.String()
}
