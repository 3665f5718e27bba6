// Package client wires the chart pipeline end to end: it builds the prompt,
// calls the configured LLM provider, and runs the completion text through
// extraction, normalization and validation to produce a chart.Result.
//
// Example usage:
//
//	c, err := client.New(deepseek.New())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := c.GenerateChart(ctx, prompt.BirthInfo{
//	    Gender: "male", Calendar: "solar", Date: "1990-06-15", Hour: 10,
//	})
package client
