// Package catalog holds the bundled NCERT template catalog. The catalog is
// keyed by stable synthetic ids "206".."212" (classes 6..12) and carries
// full task fields; it is the single authoritative template table.
package catalog

import (
	"fmt"

	"study-planner.com/study-planner/pkg/constants"
	model "study-planner.com/study-planner/pkg/models"
)

type chapter struct {
	title       string
	description string
	date        string
	priority    constants.Priority
}

type subject struct {
	title       string
	description string
	chapters    []chapter
}

type class struct {
	id          string
	title       string
	description string
	subjects    []subject
}

// Templates returns the bundled catalog as independent template values;
// callers may mutate the result freely.
func Templates() []model.Template {
	out := make([]model.Template, 0, len(classes))
	for _, c := range classes {
		t := model.Template{
			ID:          c.id,
			Title:       c.title,
			Description: c.description,
		}
		for mi, s := range c.subjects {
			m := model.TemplateModule{
				ID:          fmt.Sprintf("%s-m%d", c.id, mi+1),
				TemplateID:  c.id,
				Title:       s.title,
				Description: s.description,
				Position:    mi,
			}
			for ti, ch := range s.chapters {
				m.Tasks = append(m.Tasks, model.TemplateTask{
					ID:               fmt.Sprintf("%s-t%d", m.ID, ti+1),
					TemplateModuleID: m.ID,
					Title:            ch.title,
					Description:      ch.description,
					Date:             ch.date,
					Category:         constants.CategoryStudy,
					Priority:         ch.priority,
					Subtasks:         []model.SubTask{},
					Position:         ti,
				})
			}
			t.Modules = append(t.Modules, m)
		}
		out = append(out, t)
	}
	return out
}

var classes = []class{
	{
		id:          "206",
		title:       "Class 6",
		description: "NCERT Class 6 study plan",
		subjects: []subject{
			{
				title:       "Mathematics",
				description: "Class 6 NCERT Mathematics",
				chapters: []chapter{
					{"Knowing Our Numbers", "Place value, estimation and number comparison", "2024-04-01", constants.PriorityHigh},
					{"Whole Numbers", "Properties of whole numbers on the number line", "2024-04-08", constants.PriorityMedium},
				},
			},
			{
				title:       "Science",
				description: "Class 6 NCERT Science",
				chapters: []chapter{
					{"Food: Where Does It Come From?", "Sources of food and food habits", "2024-04-03", constants.PriorityMedium},
					{"Components of Food", "Nutrients, balanced diet and deficiency diseases", "2024-04-10", constants.PriorityMedium},
				},
			},
		},
	},
	{
		id:          "207",
		title:       "Class 7",
		description: "NCERT Class 7 study plan",
		subjects: []subject{
			{
				title:       "Mathematics",
				description: "Class 7 NCERT Mathematics",
				chapters: []chapter{
					{"Integers", "Operations on integers and their properties", "2024-04-01", constants.PriorityHigh},
					{"Fractions and Decimals", "Multiplication and division of fractions", "2024-04-08", constants.PriorityMedium},
				},
			},
			{
				title:       "Science",
				description: "Class 7 NCERT Science",
				chapters: []chapter{
					{"Nutrition in Plants", "Photosynthesis and modes of nutrition", "2024-04-03", constants.PriorityMedium},
					{"Heat", "Temperature, transfer of heat and clothing", "2024-04-10", constants.PriorityLow},
				},
			},
		},
	},
	{
		id:          "208",
		title:       "Class 8",
		description: "NCERT Class 8 study plan",
		subjects: []subject{
			{
				title:       "Mathematics",
				description: "Class 8 NCERT Mathematics",
				chapters: []chapter{
					{"Rational Numbers", "Properties and representation on the number line", "2024-04-01", constants.PriorityHigh},
					{"Linear Equations in One Variable", "Solving and applying linear equations", "2024-04-08", constants.PriorityHigh},
				},
			},
			{
				title:       "Science",
				description: "Class 8 NCERT Science",
				chapters: []chapter{
					{"Crop Production and Management", "Agricultural practices and tools", "2024-04-03", constants.PriorityMedium},
					{"Force and Pressure", "Effects of force, pressure in fluids", "2024-04-10", constants.PriorityMedium},
				},
			},
		},
	},
	{
		id:          "209",
		title:       "Class 9",
		description: "NCERT Class 9 study plan",
		subjects: []subject{
			{
				title:       "Mathematics",
				description: "Class 9 NCERT Mathematics",
				chapters: []chapter{
					{"Number Systems", "Real numbers, irrationals and laws of exponents", "2024-04-01", constants.PriorityHigh},
					{"Polynomials", "Zeroes, remainder theorem and factorisation", "2024-04-08", constants.PriorityHigh},
				},
			},
			{
				title:       "Science",
				description: "Class 9 NCERT Science",
				chapters: []chapter{
					{"Matter in Our Surroundings", "States of matter and change of state", "2024-04-03", constants.PriorityMedium},
					{"Motion", "Distance, displacement and equations of motion", "2024-04-10", constants.PriorityHigh},
				},
			},
		},
	},
	{
		id:          "210",
		title:       "Class 10",
		description: "NCERT Class 10 study plan",
		subjects: []subject{
			{
				title:       "Mathematics",
				description: "Class 10 NCERT Mathematics",
				chapters: []chapter{
					{"Real Numbers", "Euclid's division lemma and fundamental theorem of arithmetic", "2024-04-01", constants.PriorityHigh},
					{"Quadratic Equations", "Roots, discriminant and applications", "2024-04-08", constants.PriorityHigh},
				},
			},
			{
				title:       "Science",
				description: "Class 10 NCERT Science",
				chapters: []chapter{
					{"Chemical Reactions and Equations", "Balancing and types of chemical reactions", "2024-04-03", constants.PriorityHigh},
					{"Light: Reflection and Refraction", "Mirrors, lenses and the lens formula", "2024-04-10", constants.PriorityHigh},
				},
			},
		},
	},
	{
		id:          "211",
		title:       "Class 11",
		description: "NCERT Class 11 study plan",
		subjects: []subject{
			{
				title:       "Physics",
				description: "Class 11 NCERT Physics",
				chapters: []chapter{
					{"Units and Measurements", "SI units, dimensional analysis and errors", "2024-04-01", constants.PriorityHigh},
					{"Laws of Motion", "Newton's laws, friction and circular motion", "2024-04-08", constants.PriorityHigh},
				},
			},
			{
				title:       "Chemistry",
				description: "Class 11 NCERT Chemistry",
				chapters: []chapter{
					{"Some Basic Concepts of Chemistry", "Mole concept and stoichiometry", "2024-04-03", constants.PriorityHigh},
					{"Structure of Atom", "Quantum numbers and electronic configuration", "2024-04-10", constants.PriorityHigh},
				},
			},
		},
	},
	{
		id:          "212",
		title:       "Class 12",
		description: "NCERT Class 12 study plan",
		subjects: []subject{
			{
				title:       "Physics",
				description: "Class 12 NCERT Physics",
				chapters: []chapter{
					{"Electric Charges and Fields", "Coulomb's law and Gauss's theorem", "2024-04-01", constants.PriorityHigh},
					{"Current Electricity", "Ohm's law, circuits and Kirchhoff's rules", "2024-04-08", constants.PriorityHigh},
				},
			},
			{
				title:       "Chemistry",
				description: "Class 12 NCERT Chemistry",
				chapters: []chapter{
					{"Solutions", "Concentration terms and colligative properties", "2024-04-03", constants.PriorityHigh},
					{"Electrochemistry", "Electrochemical cells and the Nernst equation", "2024-04-10", constants.PriorityHigh},
				},
			},
		},
	},
}
