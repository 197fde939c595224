package promptbuilder

import (
	"fmt"
	"strings"

	"icona/internal/catalog"
)

const preamble = `PHOTOGRAPHIC TRANSFORMATION TASK: Generate a new photograph of this person with precise identity preservation and creative scene reconstruction.

You are an expert prompt engineer for AI image generation, specializing in creating authentic, lived-in portraits where people genuinely belong in their era and setting. Your task is to generate a comprehensive image generation prompt based on a user's selection.`

const stylingSection = `2.  **PROFESSIONAL STYLING (Hair, Makeup, Wardrobe):**
    Describe the work of a professional styling team.
    - **Hair:** Detail an era-appropriate hairstyle that is adapted to the subject's natural hair texture and face shape. It must show signs of wear appropriate for the scene's duration (e.g., flyaways, loosening).
    - **Makeup:** Using gender-adaptive language, describe era-appropriate cosmetics that enhance their features, not mask them. Detail realistic wear, like slight fading or creasing.
    - **Wardrobe:** Describe the era-appropriate garments, specifying fabric type, fit, and how it drapes on the body. It must show realistic fabric physics (wrinkles, folds from movement).`

const closingBlock = `CRITICAL IDENTITY & GENDER PRESERVATION MANDATES:
- CRITICAL PROHIBITION: Do NOT alter the subject's perceived gender, ethnicity, or core facial structure. The goal is to see THIS person in a new style, not to turn them into a different person.
- The styling (hair, makeup, wardrobe) must be adapted to the subject's existing features in a gender-inclusive way. For example, for a "Barbiecore" look, a man should look like a high-fashion Ken, not be turned into Barbie. A woman should look like a high-fashion Barbie. The aesthetic must be applied to the person, not the other way around.
- Preserve all unique and defining characteristics of the person in the photo.

CRITICAL REQUIREMENTS:
- Use gender-adaptive language only (their/they).
- Every detail must have a cause, explaining *why* it looks that way.
- Focus on what the person is experiencing, not just what the viewer sees.
- The person must LIVE in the scene, not just be placed in it.

Generate the complete, detailed, multi-paragraph prompt for the image generation model now.
`

func render(r resolved, opts Options, selection []string) string {
	noun := catalog.StyleKindPhoto.Noun()
	if r.hasStyle {
		noun = r.style.Kind.Noun()
	}

	var b strings.Builder
	b.WriteString(preamble)
	b.WriteString("\n\nUSER SELECTION:\n")
	b.WriteString(strings.Join(selection, "\n"))
	b.WriteString("\n\nYOUR TASK:\nGenerate a complete and detailed image generation prompt following this EXACT structure and tone. Be descriptive, sensory, and cinematic.\n\n")

	fmt.Fprintf(&b, `1.  **SUBJECT & IDENTITY PRESERVATION:**
    Start with: "Generate a new %s of the person in the provided image. Preserve their exact facial bone structure, unique identity markers, and recognizable likeness. %s" Then, describe the subject's emotional core and physical state based on the user's selected Mood and Vitality. Ensure the description feels natural and alive, not posed. Mention specific micro-expressions from the mood context: "%s".`,
		noun, r.archetype.Context, r.mood.Context)
	if r.hasVital && r.vitality.Context != "" {
		fmt.Fprintf(&b, "\n    Vitality direction: %s", r.vitality.Context)
	}
	b.WriteString("\n\n")

	b.WriteString(stylingSection)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, `3.  **SCENE & PHYSICAL EMBODIMENT:**
    Describe the scene based on the chosen Era and Setting, or the user's manual text. The scene must feel lived-in.
    - **Time Elapsed:** State the time elapsed, for example: "%s."
    - **Cause & Effect:** Detail how the subject physically interacts with the environment. Mention furniture compression if they're sitting, residue on their hands if they're touching something, how the temperature affects their skin, etc. This proves they exist *within* the scene.`,
		TimeElapsed(opts.EraID))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, `4.  **DYNAMIC MOMENT & COMPOSITION:**
    Describe the exact moment being captured. It must be a candid, in-between moment, not a static pose. For example: "The camera catches them mid-gesture, three seconds into a laugh..." Describe the composition based on the user's choice ('portrait' or 'immersive'), mentioning lens feel (e.g., 85mm for portrait, 35mm for immersive) and lighting motivation. %s Optimize for iOS display: sRGB color space, avoid extreme highlights that clip on mobile screens, ensure legibility at thumbnail size.`,
		AspectMandate(opts.Mode))
	b.WriteString("\n\n")

	b.WriteString(`5.  **STYLE & EXECUTION:**
    Specify the execution based on the user's chosen Style. Include details on lighting, color grading, film grain (if applicable), and overall quality. Reiterate that the final output must be hyperrealistic and masterful.`)
	if r.hasStyle {
		if r.style.Positive != "" {
			fmt.Fprintf(&b, "\n    - **Style Descriptors:** %s", r.style.Positive)
		}
		if r.style.Negative != "" {
			fmt.Fprintf(&b, "\n    - **Avoid:** %s", r.style.Negative)
		}
	}
	b.WriteString("\n\n")

	b.WriteString(closingBlock)
	return b.String()
}
