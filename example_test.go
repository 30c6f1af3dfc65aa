package html2bbcode_test

import (
	"context"
	"fmt"
	"log"

	html2bbcode "github.com/alnah/go-html2bbcode"
)

func ExampleConverter_Convert() {
	conv, err := html2bbcode.NewConverter()
	if err != nil {
		log.Fatal(err)
	}

	result, err := conv.Convert(context.Background(), html2bbcode.Input{
		HTML:       `<b>Hi</b> <a href="http://x.com" target="_blank">link</a>`,
		DocumentID: "example",
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(result.BBCode)
	// Output: [b]Hi[/b] [url=http://x.com t=_blank]link[/url]
}

func ExampleConverter_Convert_codeBlock() {
	conv, err := html2bbcode.NewConverter()
	if err != nil {
		log.Fatal(err)
	}

	result, err := conv.Convert(context.Background(), html2bbcode.Input{
		HTML: "<pre>int x = 1;</pre>",
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(result.BBCode)
	// Output:
	// [code]
	// int x = 1;
	// [/code]
}
