package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/binzume/vrmrig/mapping"
	"github.com/binzume/vrmrig/springbone"
	"github.com/binzume/vrmrig/vrm"
)

func defaultOutputFile(input string) string {
	ext := filepath.Ext(input)
	return input[0:len(input)-len(ext)] + "_out.vrm"
}

func detectBones(doc *vrm.Document, conventionFile string) error {
	var extra []*mapping.Table
	if conventionFile != "" {
		table, err := mapping.LoadConventionFile(conventionFile)
		if err != nil {
			return err
		}
		log.Print("convention: ", table.Name)
		extra = append(extra, table)
	}
	assignments, err := doc.DetectHumanoid(extra...)
	if err != nil {
		return err
	}
	names := doc.NodeNames()
	for _, a := range assignments {
		log.Printf("  %s: %s", a.Spec.Name, a.BoneName)
	}
	log.Printf("mapped %d of %d nodes", len(assignments), len(names))
	doc.ApplyHumanoid(assignments)
	return nil
}

func simulate(doc *vrm.Document, steps int, dt float64) error {
	springs, groups, err := doc.ImportSprings()
	if err != nil {
		return err
	}
	if len(springs) == 0 {
		return fmt.Errorf("no spring bones in model")
	}
	sim := springbone.NewSimulator(springs, groups)
	for i := 0; i < steps; i++ {
		sim.Advance(dt)
	}
	for i, spring := range springs {
		pos := sim.Positions(i)
		log.Printf("  %s: tip %v", spring.Name, pos[len(pos)-1])
	}
	return doc.ExportSprings(springs, groups)
}

func saveVRM(doc *vrm.Document, output string, normalize bool) error {
	if normalize {
		doc.FixJointComponentType()
		doc.FixJointMatrix()
	}
	w, err := os.Create(output)
	if err != nil {
		return err
	}
	defer w.Close()
	return vrm.Write(doc, w)
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s input.vrm [output.vrm]\n", os.Args[0])
		flag.PrintDefaults()
	}
	detect := flag.Bool("detect", false, "detect humanoid bones from node names")
	convention := flag.String("convention", "", "extra bone naming convention (.yaml)")
	vrmconf := flag.String("vrmconfig", "", "config file for VRM")
	steps := flag.Int("simulate", 0, "spring bone simulation steps")
	dt := flag.Float64("dt", 1.0/60, "simulation time step in seconds")
	normalize := flag.Bool("normalize", false, "normalize joint rotations and component types")
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		return
	}
	input := flag.Arg(0)
	output := ""
	if flag.NArg() > 1 {
		output = flag.Arg(1)
	}

	doc, err := vrm.Load(input)
	if err != nil {
		log.Fatal(err)
	}

	if doc.IsVRM1() {
		log.Print("Name: ", doc.VRM1().Meta.Name)
		log.Print("Authors: ", strings.Join(doc.VRM1().Meta.Authors, ","))
	} else {
		log.Print("Title: ", doc.VRM().Meta.Title)
		log.Print("Author: ", doc.VRM().Meta.Author)
	}

	if *detect || *convention != "" {
		if err := detectBones(doc, *convention); err != nil {
			log.Fatal(err)
		}
	}

	if *vrmconf != "" {
		if err := doc.ApplyConfigFile(*vrmconf); err != nil {
			log.Fatal(err)
		}
	}

	if !doc.IsVRM1() {
		if err := doc.ValidateBones(); err != nil {
			log.Print(err)
		}
	}

	if *steps > 0 {
		if err := simulate(doc, *steps, *dt); err != nil {
			log.Fatal(err)
		}
	}

	if output == "" && (*detect || *vrmconf != "" || *steps > 0 || *normalize) {
		output = defaultOutputFile(input)
	}
	if output != "" {
		log.Print("out: ", output)
		if err := saveVRM(doc, output, *normalize); err != nil {
			log.Fatal(err)
		}
	}
}
