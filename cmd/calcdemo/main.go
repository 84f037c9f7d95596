package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libcalc/accumulator"
	"github.com/sgostarter/libcalc/arith"
	"github.com/sgostarter/libcalc/script"
	"github.com/sgostarter/libcalc/shapes"
)

func main() {
	var configFile string

	flag.StringVar(&configFile, "config", "", "yaml script to run")
	flag.Parse()

	logger := l.NewConsoleLoggerWrapper()

	switch {
	case configFile != "":
		cfg, err := script.LoadConfig(configFile)
		if err != nil {
			logger.WithFields(l.ErrorField(err), l.StringField("file", configFile)).Fatal("load config failed")
		}

		os.Exit(runScript(cfg, logger))
	case flag.NArg() > 0:
		steps, err := script.ParseSteps(flag.Args())
		if err != nil {
			logger.WithFields(l.ErrorField(err)).Fatal("parse args failed")
		}

		os.Exit(runScript(&script.Config{Steps: steps}, logger))
	default:
		shapesDemo()
		calculatorDemo(logger)
	}
}

func runScript(cfg *script.Config, logger l.Wrapper) int {
	report, err := script.Run(cfg, logger)
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Error("run failed")

		return 1
	}

	for idx, result := range report.Results {
		if result.Err != nil {
			fmt.Printf("step %d (%s): %s\n", idx+1, result.Step.Op, arith.Describe(result.Err))

			continue
		}

		fmt.Printf("step %d (%s): %d\n", idx+1, result.Step.Op, result.Value)
	}

	fmt.Printf("\nFinal result: %d\n\nHistory:\n%s\n", report.Final, report.History)

	if report.Failed() > 0 {
		return 2
	}

	return 0
}

func shapesDemo() {
	fmt.Println("=== Shapes Demo ===")

	ss := make([]shapes.Shape, 0, 2)

	if rect, err := shapes.NewRectangle(5, 3); err == nil {
		ss = append(ss, rect)
	} else {
		fmt.Println("Rectangle error:", err)
	}

	if circle, err := shapes.NewCircle(2.5); err == nil {
		ss = append(ss, circle)
	} else {
		fmt.Println("Circle error:", err)
	}

	for idx, s := range ss {
		fmt.Printf("Shape %d: %s - area: %.2f, perimeter: %.2f\n", idx+1, s.Name(), s.Area(), s.Perimeter())
	}

	if largest, ok := shapes.FindLargest(ss); ok {
		fmt.Println("Largest:", largest.Name())
	}
}

func calculatorDemo(logger l.Wrapper) {
	fmt.Println("\n=== Calculator Demo ===")

	acc := accumulator.NewAccumulator(logger)

	for _, op := range []accumulator.Operation{
		{Type: accumulator.OpTypeAdd, Operand: 10},
		{Type: accumulator.OpTypeMultiply, Operand: 3},
		{Type: accumulator.OpTypeSubtract, Operand: 5},
	} {
		if _, err := acc.Perform(op); err != nil {
			fmt.Println("Error:", arith.Describe(err))

			return
		}
	}

	fmt.Println("Final result:", acc.Current())
	fmt.Printf("\nHistory:\n%s\n", acc.HistoryString())

	fmt.Println("\n=== Error Handling Demo ===")

	if _, err := acc.Divide(0); err != nil {
		fmt.Println("Division error:", err)
	}

	acc.Clear()

	_, _ = acc.Add(5)

	if v, err := acc.Factorial(); err == nil {
		fmt.Println("5! =", v)
	} else {
		fmt.Println("Factorial error:", err)
	}
}
