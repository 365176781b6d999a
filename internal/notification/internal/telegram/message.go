// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package telegram

import (
	"fmt"
	"strings"

	"github.com/ecodeclub/campus/internal/application"
)

var markdownEscaper = strings.NewReplacer(
	"_", "\\_",
	"*", "\\*",
	"`", "\\`",
	"[", "\\[",
)

// escapeMarkdown 按照 telegram 旧版 Markdown 的规则转义
func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// FormatApplication 固定格式的新申请通知
func FormatApplication(sum application.Summary) string {
	var sb strings.Builder
	sb.WriteString("📥 *New Application*\n\n")
	fmt.Fprintf(&sb, "📌 *%s*\n", escapeMarkdown(orDefault(sum.PostTitle, "Opportunity")))
	fmt.Fprintf(&sb, "🧑 %s\n", submitterLine(sum.Submitter))
	fmt.Fprintf(&sb, "📧 %s\n\n", escapeMarkdown(orDefault(sum.ApplicantEmail, "—")))
	sb.WriteString("📄 Resume:\n")
	sb.WriteString(escapeMarkdown(orDefault(sum.ResumeURL, "—")))
	return sb.String()
}

func submitterLine(sub application.Submitter) string {
	switch val := sub.(type) {
	case application.AnonymousContact:
		line := "Student: " + escapeMarkdown(val.Name)
		if val.Mobile != "" {
			line += " (" + escapeMarkdown(val.Mobile) + ")"
		}
		return line
	case application.AuthenticatedUser:
		return fmt.Sprintf("Student ID: %d", val.Uid)
	default:
		return "Student: —"
	}
}
