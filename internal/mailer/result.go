package mailer

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var statusLinePattern = regexp.MustCompile(`(?i)HTTP Status Code:\s*(\d{3})`)

// Outcome is the single result of one send.
type Outcome struct {
	Success    bool
	Message    string
	StatusCode int
	HasStatus  bool
	ExitCode   int
	HasExit    bool
}

// Interpret derives the outcome from the run result and the accumulated
// output. Later steps override earlier ones:
//
//  1. exit status (or launch failure)
//  2. the first "HTTP Status Code: NNN" line decides success, keeping the message
//  3. a trailing {"success": bool, "message": string} object decides both
func Interpret(res Result, output string) Outcome {
	var out Outcome
	switch {
	case !res.Launched:
		out.Message = "mailer could not be started."
		if res.Err != nil {
			out.Message = fmt.Sprintf("mailer could not be started: %v", res.Err)
		}
	case res.ExitCode == 0:
		out.Success = true
		out.Message = "mailer completed successfully."
		out.ExitCode, out.HasExit = 0, true
	default:
		out.Message = fmt.Sprintf("mailer exited with code %d.", res.ExitCode)
		out.ExitCode, out.HasExit = res.ExitCode, true
	}

	if code, ok := StatusCode(output); ok {
		out.StatusCode, out.HasStatus = code, true
		out.Success = code >= 200 && code < 300
	}

	if resp, ok := TrailingResponse(output); ok {
		out.Success = *resp.Success
		out.Message = *resp.Message
	}
	return out
}

// StatusCode returns the code from the first HTTP status line in output.
func StatusCode(output string) (int, bool) {
	m := statusLinePattern.FindStringSubmatch(output)
	if len(m) < 2 {
		return 0, false
	}
	code, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return code, true
}

// TrailingResponse finds the structured response ending at the last '}' in
// output. The widest span, from the first '{' before it, is tried first;
// when that does not decode (for example two concatenated objects) later
// starting braces are tried so the last complete object wins.
func TrailingResponse(output string) (Response, bool) {
	end := strings.LastIndexByte(output, '}')
	if end < 0 {
		return Response{}, false
	}
	tail := output[:end+1]
	for start := strings.IndexByte(tail, '{'); start >= 0; {
		var resp Response
		if err := json.Unmarshal([]byte(tail[start:]), &resp); err == nil && resp.complete() {
			return resp, true
		}
		next := strings.IndexByte(tail[start+1:], '{')
		if next < 0 {
			break
		}
		start += next + 1
	}
	return Response{}, false
}
