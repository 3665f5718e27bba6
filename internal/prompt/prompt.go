// Package prompt builds the outbound chart request. It owns the system
// prompt text and formats birth information into the user message; the
// sentinel markers it instructs the model to emit are the extract package's
// own constants, so prompting and extraction cannot drift apart.
package prompt

import (
	"fmt"
	"strings"

	"github.com/baobaozi233/lifekline/core/extract"
)

// System is the system prompt for chart generation. It pins the exact JSON
// shape the normalizer expects and asks for the payload between the sentinel
// markers; everything the model adds around them is tolerated by extraction.
const System = `你是一位精通八字命理的大师，擅长把一个人的一生运势绘制成"人生K线图"。
根据用户提供的出生信息排盘，逐年推演，并输出唯一一个 JSON 对象，结构如下：

{
  "chartData": [
    {"age": 1, "year": 1990, "ganZhi": "庚午", "daYun": "童限", "open": 50, "close": 55, "high": 60, "low": 45, "score": 6, "reason": "运势简评"}
  ],
  "analysis": {
    "bazi": ["年柱", "月柱", "日柱", "时柱"],
    "summary": "总评", "summaryScore": 6,
    "industry": "事业", "industryScore": 6,
    "wealth": "财运", "wealthScore": 6,
    "marriage": "婚姻", "marriageScore": 6,
    "health": "健康", "healthScore": 6,
    "family": "六亲", "familyScore": 6
  }
}

要求：
1. chartData 覆盖 1 岁到 80 岁，每年一条。
2. 所有数值字段必须是数字，不要加引号。
3. 不要输出注释、尾随逗号或单引号字符串。
4. JSON 必须完整地放在 ` + extract.MarkerStart + ` 和 ` + extract.MarkerEnd + ` 之间。`

// BirthInfo carries the user-supplied facts the chart is computed from.
type BirthInfo struct {
	Name     string
	Gender   string // "male" or "female"
	Calendar string // "solar" or "lunar"
	Date     string // YYYY-MM-DD
	Hour     int    // 0-23, birth hour
	Place    string
}

// BuildChartPrompt formats info into the user message for a chart request.
func BuildChartPrompt(info BirthInfo) string {
	var b strings.Builder

	b.WriteString("请为以下出生信息排盘并生成人生K线图：\n")
	if info.Name != "" {
		fmt.Fprintf(&b, "姓名：%s\n", info.Name)
	}
	gender := "男"
	if info.Gender == "female" {
		gender = "女"
	}
	fmt.Fprintf(&b, "性别：%s\n", gender)
	calendar := "公历"
	if info.Calendar == "lunar" {
		calendar = "农历"
	}
	fmt.Fprintf(&b, "出生日期（%s）：%s\n", calendar, info.Date)
	fmt.Fprintf(&b, "出生时辰：%d 时\n", info.Hour)
	if info.Place != "" {
		fmt.Fprintf(&b, "出生地点：%s\n", info.Place)
	}
	b.WriteString("\n严格按照系统提示的 JSON 结构输出。")

	return b.String()
}
