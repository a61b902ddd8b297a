package main

import "github.com/teamgo/teamgo/internal/app"

func main() {
	err := app.NewIdentityApp().
		Introspect(&app.ReportLoggerIntrospector{}).
		Run()
	if err != nil {
		panic(err)
	}
}
