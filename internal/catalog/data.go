package catalog

// universalNegative is appended to every professional headshot preset.
const universalNegative = "dark background, shadowy lighting, moody atmosphere, high contrast shadows, gray walls, beige backdrop, dim lighting, underexposed, black clothing only, side profile, looking away from camera, no smile, stern cold expression, blurry, low quality, over-retouched plastic skin, mannequin-like, lifeless eyes, frozen expression, stock photo aesthetic, corporate gray dystopia, 1990s dated headshot, cheap photo studio, harsh overhead lighting, flat lighting, washed out colors"

// Default returns the built-in catalog.
func Default() *Registry {
	return MustNew(DefaultData())
}

// DefaultData returns a fresh copy of the built-in tables.
func DefaultData() Data {
	return Data{
		Moods:          moods(),
		VitalityLevels: vitalityLevels(),
		Archetypes:     archetypes(),
		Eras:           eras(),
		Styles:         styles(),
		Presets:        presets(),
	}
}

func moods() []Mood {
	return []Mood{
		{
			ID:      "soft_laugh",
			Label:   "Soft Laugh",
			Context: "subtle mid-laugh micro-expression, relaxed cheeks, eyes slightly crinkled, shoulders loose, candid timing",
		},
		{
			ID:      "side_eye",
			Label:   "Side‑eye",
			Context: "a candid micro-expression, eyes caught in motion glancing sideways with a knowing smirk",
		},
		{
			ID:      "half_smile",
			Label:   "Half‑smile",
			Context: "a quiet confidence with a gentle half-smile",
		},
		{
			ID:      "bashful",
			Label:   "Bashful",
			Context: "a shy, bashful warmth in their gaze",
		},
		{
			ID:      "calm_power",
			Label:   "Calm Power",
			Context: "steady posture, shoulders open, composed mouth, eyes direct and relaxed, grounded stillness",
		},
		{
			ID:      "distant_gaze",
			Label:   "Distant Gaze",
			Context: "eyes focused off-camera, contemplative, gentle squint, wind or movement in hair allowed",
		},
		{
			ID:      "caught_mid_blink",
			Label:   "Caught Mid‑Blink",
			Context: "a candid moment, caught mid-blink with natural imperfection",
		},
	}
}

func vitalityLevels() []VitalityLevel {
	return []VitalityLevel{
		{
			ID:      "vitality_0_off",
			Label:   "Off",
			Context: "natural presentation; no makeover refinements.",
		},
		{
			ID:      "vitality_1_polish",
			Label:   "The Glow Up",
			Context: "The Glow Up: well-rested appearance via lighting (soft under-eye fill, gentle cheekbone highlight); upright posture cue; subtle jawline clarity through lighting angle only—never alter bone structure or body proportions; even skin tone via color grading; no body morphing, no weight change, no face reshaping; flattering but realistic light.",
		},
		{
			ID:      "vitality_2_tone",
			Label:   "Fit & Toned",
			Context: "Fit & Toned: balanced silhouette with proportional refinement, faint athletic definition at arms and jaw, waist emphasis through posture and garment drape, lengthening vertical lines; identity preserved; no drastic size change.",
		},
		{
			ID:      "vitality_3_director",
			Label:   "Celebrity Makeover",
			Context: "Celebrity Makeover: celebrity photo-director illusion set: three-quarter angle, weight on back leg, shoulders open, chin forward-down; 85–105mm lens feel; subtractive side fill for edge slimming; soft rim light for separation; darker flanks and subtle vignette; structured tailoring effect in wardrobe; maintain natural proportions; no shrink-wrap look.",
		},
	}
}

func archetypes() []Archetype {
	return []Archetype{
		{
			ID:      "default",
			Label:   "Default (As You Are)",
			Context: "They are presented at their natural age.",
		},
		{
			ID:      "younger",
			Label:   "Subtly Younger",
			Context: "They appear as a subtly younger version of themselves.",
		},
		{
			ID:      "older",
			Label:   "Subtly Older",
			Context: "They appear as a subtly older, more distinguished version of themselves.",
		},
	}
}

func eras() []Era {
	return []Era{
		{
			ID:         "new_hollywood",
			Label:      "New Hollywood (Current Day)",
			Context:    "Contemporary red carpet glamour, modern haute couture, and high-fashion editorial energy, like the modern Oscars or Met Gala.",
			Settings: []Setting{
				{ID: "red_carpet_arrival", Label: "Red Carpet Arrival", Context: "Posing on the red carpet against a chaotic backdrop of blinding paparazzi flashbulbs and press microphones. Wearing a modern designer gown or tuxedo."},
				{ID: "vanity_fair_afterparty", Label: "Vanity Fair Afterparty", Context: "A candid moment inside an exclusive afterparty. Moody, intimate lighting with bokeh from jewelry and champagne glasses."},
				{ID: "hotel_suite_prep", Label: "Getting Ready (Hotel Suite)", Context: "A behind-the-scenes moment in a luxury hotel suite before the event, in the final stages of getting ready with stylists."},
			},
		},
		{
			ID:         "vogue_photoshoot",
			Label:      "Vogue Photoshoot (High Couture)",
			Context:    "high-fashion editorial portrait, architectural posing, couture garment drama, magazine-cover presence",
			Settings: []Setting{
				{ID: "studio_minimalism", Label: "Studio Minimalism", Context: "minimalist studio with seamless infinity backdrop, single key light, and dramatic shadow play"},
				{ID: "rooftop_golden", Label: "Rooftop Golden Hour", Context: "urban rooftop at golden hour with a defocused skyline and sun rimlight gilding the subject's profile"},
				{ID: "editorial_backstage", Label: "Editorial Backstage", Context: "an unguarded moment at a backstage makeup station, surrounded by the tools of the trade, catching a reflection in the mirror"},
				{ID: "atelier_fitting", Label: "Atelier Fitting Room", Context: "a couture atelier fitting room with muslin draping, tailor's chalk marks, and the subject checking their silhouette in a three-way mirror"},
			},
		},
		{
			ID:         "speakeasy_1920s",
			Label:      "1920's Speakeasy (Jazz Age)",
			IsThematic: true,
			Context:    "1920s New York City prohibition-era nightclub, Art Deco geometry, cigarette smoke diffusion, jazz-age rebellion energy.",
			Settings: []Setting{
				{ID: "velvet_booth", Label: "Velvet Booth", Context: "a burgundy velvet banquette with a brass table lamp, mid-conversation in an intimate setting"},
				{ID: "dance_floor", Label: "Dance Floor", Context: "parquet dance floor reflecting chandeliers, mid-Charleston step with fabric in motion"},
				{ID: "alley_exit", Label: "Alley Exit (Midnight)", Context: "a brick alley behind the venue with a single tungsten bulb, adjusting a cloche hat after leaving"},
				{ID: "speakeasy_bar", Label: "Speakeasy Bar", Context: "leaning on a mahogany bar, backlit by amber bottles, engaged in a story"},
			},
		},
		{
			ID:         "planet_2077",
			Label:      "Futuristic Planet 2077",
			Context:    "off-world colony aesthetic, biodome architecture, advanced textiles, frontier pioneer energy",
			Settings: []Setting{
				{ID: "neon_district", Label: "Neon District", Context: "navigating a crowded market with holographic signage in an alien script and vapor rising from food vendors"},
				{ID: "station_lounge", Label: "Space Station Lounge", Context: "reclining in a lounge with a floor-to-ceiling viewport showing the planet below, with hair floating slightly in reduced gravity"},
				{ID: "crater_observatory", Label: "Crater Observatory", Context: "inside a glass dome observatory showing two moons, wearing thermal clothing and holding a warm mug"},
				{ID: "hydroponic_garden", Label: "Hydroponic Garden", Context: "checking plants in a hydroponic garden with vertical towers and purple grow lights"},
			},
		},
		{
			ID:         "rockstar_1980s",
			Label:      "1980's Rockstar (MTV Era)",
			IsThematic: true,
			Context:    "1980s arena rock peak era, hairspray rebellion, leather and denim authenticity, sweat and stage lights.",
			Settings: []Setting{
				{ID: "stage_spotlight", Label: "Stage Spotlight", Context: "caught in a white spotlight beam on stage, mid-performance crouch with microphone, with Marshall amps stacked behind"},
				{ID: "tour_bus_bunk", Label: "Tour Bus Interior", Context: "a candid moment in a narrow tour bus bunk, tuning a guitar with highway lights streaking past the window"},
				{ID: "backstage_mirror", Label: "Backstage Mirror", Context: "leaning close to a makeup mirror with bare bulbs, applying stage makeup with intense concentration"},
				{ID: "record_store_signing", Label: "Record Store Signing", Context: "mid-signature on a vinyl album at a record store signing event, with mall fluorescent lighting and camera flashes"},
			},
		},
		{
			ID:         "old_hollywood",
			Label:      "Old Hollywood (1930s–50s)",
			IsThematic: true,
			Context:    "golden-age studio portrait mood, classic 1930s-1950s wardrobe, timeless glamour.",
			Settings: []Setting{
				{ID: "soundstage", Label: "Soundstage", Context: "posing on a grand Hollywood soundstage with vintage film equipment and powerful studio lights."},
				{ID: "premiere", Label: "Premiere Night", Context: "arriving at a glamorous movie premiere, with bright, chaotic flashbulbs of paparazzi cameras."},
			},
		},
		{
			ID:         "studio_54",
			Label:      "Studio 54 (late 70s)",
			IsThematic: true,
			Context:    "1970s NYC nightclub, in-club candid, disco ball caustics, metallic fabrics, liberated energy, caught mid-dance.",
			Settings: []Setting{
				{ID: "dancefloor", Label: "Dancefloor", Context: "lost in rhythm on a crowded dancefloor, light catching sweat and glitter."},
				{ID: "vip", Label: "VIP Booth", Context: "in a velvet VIP booth, leaning in for a whispered conversation."},
			},
		},
		{
			ID:         "indie_sleaze",
			Label:      "Indie Sleaze (2010 Tumblr)",
			Context:    "messy candid, thrift styling, cigarette break alley aesthetic.",
			Settings: []Setting{
				{ID: "rooftop", Label: "Rooftop", Context: "on a rooftop with city lights bokeh and wind in their hair."},
				{ID: "bathroom", Label: "Bathroom Mirror", Context: "a messy, overexposed mirror selfie in a grungy bathroom with a hard, direct flash."},
			},
		},
		{
			ID:         "y2k_pop_star",
			Label:      "Y2K Pop Star",
			IsThematic: true,
			Context:    "early-2000s pop editorial, shimmering wardrobe, frosted accents.",
			Settings: []Setting{
				{ID: "music_video", Label: "Music Video", Context: "on the set of a glossy, futuristic Y2K music video with vibrant colored gel lighting."},
				{ID: "press_shoot", Label: "Press Shoot", Context: "at a press shoot with high-key lighting and a bold pose against a seamless, brightly colored backdrop."},
			},
		},
		{
			ID:         "rnb_90s_cover",
			Label:      "90s R&B Cover",
			IsThematic: true,
			Context:    "studio portrait with soft glam, warm skin tones, satin wardrobe, minimal set design.",
			Settings: []Setting{
				{ID: "album_cover", Label: "Album Cover", Context: "for an album cover with a vignette fade and whispered intimacy."},
				{ID: "backstage", Label: "Backstage", Context: "in a dimly lit backstage dressing room, sharing a private joke."},
			},
		},
		{
			ID:         "euro_techno_1998",
			Label:      "Euro Techno 1998",
			Context:    "warehouse rave, sodium vapor palette, sweat + strobe realism, utilitarian styling.",
			Settings: []Setting{
				{ID: "strobe_pit", Label: "Strobe Pit", Context: "in a strobe pit with motion trails and laser haze."},
				{ID: "smoke_break", Label: "Smoke Break", Context: "on a smoke break in a corridor with neon lighting."},
			},
		},
		{
			ID:         "mythic_greece",
			Label:      "Mythic Greece",
			Context:    "sun-bleached marble, draped fabrics, laurel texture, dawn light, heroic composure.",
			Settings: []Setting{
				{ID: "temple_steps", Label: "Temple Steps", Context: "on temple steps framed by pillars with warm sunrise rim light."},
				{ID: "olive_grove", Label: "Olive Grove", Context: "in an olive grove with dappled light and a gentle breeze."},
			},
		},
		{
			ID:         "neo_samurai",
			Label:      "Neo‑Samurai (alt future)",
			Context:    "futurist kimono tech-weave, chrome accents, atmospheric lighting.",
			Settings: []Setting{
				{ID: "alley_rain", Label: "Alley Rain", Context: "in a rain-slicked alleyway with neon calligraphy signage."},
				{ID: "rooftop_dawn", Label: "Rooftop Dawn", Context: "on a rooftop at dawn, overlooking a city shrouded in fog."},
			},
		},
		{
			ID:         "regency_ball",
			Label:      "Regency Ball",
			IsThematic: true,
			Context:    "Regency era (early 1800s) period costume portrait, candlelit ballroom, silk and lace.",
			Settings: []Setting{
				{ID: "grand_stair", Label: "Grand Stair", Context: "making a grand entrance on a grand staircase with candelabra glow."},
				{ID: "garden_walk", Label: "Garden Walk", Context: "on a garden walk under moonlight."},
			},
		},
		{
			ID:         "desi_royal_court",
			Label:      "Desi Royal Court",
			IsThematic: true,
			Context:    "regal textiles, intricate jewelry, courtyard arches, warm gold light, dignified posture.",
			Settings: []Setting{
				{ID: "durbar_hall", Label: "Durbar Hall", Context: "in a durbar hall with carved wood and patterned carpets."},
				{ID: "courtyard", Label: "Courtyard", Context: "in a courtyard with jaali lattice shadows and floral garlands."},
			},
		},
		{
			ID:         "afrofuturism",
			Label:      "Afrofuturism",
			Context:    "African aesthetics + advanced tech motifs, bold geometry, saturated jewel tones, cultural pride.",
			Settings: []Setting{
				{ID: "cosmic_metropolis", Label: "Cosmic Metropolis", Context: "in a cosmic metropolis with bioluminescent signage."},
				{ID: "desert_runway", Label: "Desert Runway", Context: "on a desert runway with red earth and reflective alloys."},
			},
		},
		{
			ID:         "roma_eterna",
			Label:      "Roma Eterna",
			Context:    "imperial Rome timelessness, stone textures, bronze accents, commanding stance.",
			Settings: []Setting{
				{ID: "forum", Label: "Forum", Context: "in the Roman forum with arches and midday sun."},
				{ID: "camp", Label: "Campaign Camp", Context: "in a campaign camp with canvas tents and torchlight."},
			},
		},
		{
			ID:         "cyber_heist_2042",
			Label:      "Cyber Heist 2042",
			Context:    "near-future covert ops, matte black techwear, low-key neon, tactical calm.",
			Settings: []Setting{
				{ID: "server_room", Label: "Server Room", Context: "in a server room with cool cyan strip lighting."},
				{ID: "metro_escape", Label: "Metro Escape", Context: "escaping on a metro train with motion blur."},
			},
		},
		{
			ID:         "coastal_grandma",
			Label:      "Coastal Grandma",
			Context:    "sunlit seaside cottage colorway, linen textures, soft breeze, relaxed warmth.",
			Settings: []Setting{
				{ID: "porch", Label: "Porch", Context: "on a porch with dappled foliage and an unforced smile."},
				{ID: "beach_walk", Label: "Beach Walk", Context: "on a beach walk with sea grass and an overcast softbox sky."},
			},
		},
		{
			ID:         "dark_academia",
			Label:      "Dark Academia",
			IsThematic: true,
			Context:    "scholarly mood, oaken shelves, tweed and wool, chiaroscuro with window light, bookish gravity.",
			Settings: []Setting{
				{ID: "library_nook", Label: "Library Nook", Context: "in a library nook, caught turning a page in a heavy, leather-bound book."},
				{ID: "courtyard_arcade", Label: "Courtyard Arcade", Context: "in a courtyard arcade with stone colonnades and drizzle."},
			},
		},
		{
			ID:         "manual",
			Label:      "Manual (Custom)",
			Context:    "",
		},
		{
			ID:         "surprise_me",
			Label:      "Surprise Me! (AI Choice)",
			Context:    "A surprising and creative scene, chosen by the AI.",
		},
	}
}

func styles() []Style {
	return []Style{
		{
			ID:       "photo-real-iphone",
			Label:    "Photo Real: Candid iPhone",
			Kind:     StyleKindPhoto,
			Positive: "high-fidelity photograph, candid moment, ambient natural light, contemporary phone camera look.",
			Negative: "no heavy retouch, no beauty filter, no AI gloss",
		},
		{
			ID:       "photo-real-candid-selfie",
			Label:    "Photo Real: Candid Selfie",
			Kind:     StyleKindPhoto,
			Positive: "candid front-facing camera aesthetic, intimate close-up, shallow depth of field, direct eye contact with the lens, natural ambient light.",
			Negative: "no visible phone, no distorted arm, no selfie stick, not a mirror selfie.",
		},
		{
			ID:       "cinema-action-cam-pov",
			Label:    "Cinema: Action Cam POV",
			Kind:     StyleKindPhoto,
			Positive: "cinematic first-person point-of-view, ultra-wide lens feel with subtle edge distortion, sense of dynamic motion, high-energy, immersive.",
			Negative: "no visible camera, no selfie stick, static, posed, telephoto.",
		},
		{
			ID:       "editorial-vogue",
			Label:    "Editorial Vogue",
			Kind:     StyleKindPhoto,
			Positive: "editorial fashion photograph, controlled studio key light, soft fill, refined color grading, elevated styling.",
			Negative: "no cheap glamour, no Instagram filter",
		},
		{
			ID:       "cinema-70mm",
			Label:    "Cinema Still 70mm",
			Kind:     StyleKindPhoto,
			Positive: "cinematic film still, 70mm vibe, rich dynamic range, filmic grain, soft halation, production design in frame.",
			Negative: "no TV soap look",
		},
		{
			ID:       "film-35mm-grain",
			Label:    "Film 35mm Grain",
			Kind:     StyleKindPhoto,
			Positive: "35mm film photograph, organic grain, gentle contrast curve, authentic light leaks permitted.",
			Negative: "no harsh digital sharpening",
		},
		{
			ID:       "polaroid",
			Label:    "Polaroid Instant",
			Kind:     StyleKindPhoto,
			Positive: "Instant film look, slight color shift, on-camera flash allowed.",
			Negative: "no printed frame graphics",
		},
		{
			ID:       "ghibli",
			Label:    "Ghibli",
			Kind:     StyleKindIllustration,
			Positive: "Ghibli art style. Hand-painted feel, soft palettes, naturalistic shading, tender atmosphere.",
			Negative: "no heavy outlines, no Western comic inking",
		},
		{
			ID:       "anime",
			Label:    "Anime",
			Kind:     StyleKindIllustration,
			Positive: "Anime illustration. Clean line art, cel-shading, expressive eyes.",
			Negative: "no text bubbles",
		},
		{
			ID:       "pixar",
			Label:    "Pixar‑esque",
			Kind:     StyleKindIllustration,
			Positive: "Pixar-esque CGI animation still. Cinematic lighting, subsurface scattering on skin.",
			Negative: "no glossy plastic toy look",
		},
		{
			ID:       "comic-noir",
			Label:    "Comic Noir",
			Kind:     StyleKindIllustration,
			Positive: "Comic noir art style. High-contrast inking, chiaroscuro, moody frame.",
			Negative: "no speech balloons",
		},
		{
			ID:       "watercolor",
			Label:    "Watercolor Ink",
			Kind:     StyleKindIllustration,
			Positive: "Watercolor and ink line art. Fluid pigment pools, organic edges.",
			Negative: "no over-rendered detail",
		},
		{
			ID:       "oil-painting",
			Label:    "Oil Painting",
			Kind:     StyleKindIllustration,
			Positive: "Museum-grade oil painting. Controlled brushwork, layered glazing.",
			Negative: "no cartoon exaggeration",
		},
		{
			ID:       "lofi-doodle",
			Label:    "Lo‑fi Notebook Doodle",
			Kind:     StyleKindIllustration,
			Positive: "Sketchbook drawing. Graphite and pen, casual doodle vibe.",
			Negative: "no text notes, no ruled lines",
		},
	}
}

func presets() []Preset {
	return []Preset{
		{
			ID:              "classic_glam",
			Label:           "Classic Glam",
			Category:        PresetCategoryCreative,
			Emoji:           "🎬",
			Description:     "Old Hollywood red carpet elegance",
			MoodID:          "calm_power",
			VitalityLevelID: "vitality_1_polish",
			ArchetypeID:     "default",
			EraID:           "old_hollywood",
			SettingID:       "premiere",
			ManualEraText: `Generate a new photograph of the person in the provided image, styled for an Old Hollywood (1940s) movie premiere. Preserve their exact facial bone structure and unique identity markers. The final composition MUST be a vertical 4:5 portrait.

A professional styling team has prepared them. Hair is styled in a period-authentic way that complements their features (e.g., Victory rolls, elegant updos, or sculpted waves), showing realistic hold and texture after an hour under the lights. Makeup (if culturally appropriate for their style) enhances their features with a 1940s aesthetic—defined brows, matte skin, a classic lip color suited to their skin tone. Wardrobe is a period-appropriate garment (e.g., a satin gown, tailored tuxedo) in a rich fabric that drapes naturally on their body, showing subtle creases from movement.

The scene is a movie premiere at night. They are caught in a dynamic, mid-motion moment—turning towards a camera, with the chaotic, bright flashbulbs of paparazzi creating a high-contrast, glamorous backdrop with lens flare. The lighting is dramatic and cinematic, with a strong key light sculpting their face. The mood is calm power; they are poised and confident amidst the chaos.

This is not a costume; it's an authentic moment. Their expression is a subtle, confident half-smile. The final image should have the feel of a classic 70mm film still: rich tones, subtle film grain, and masterful, timeless quality.`,
			StyleID:         "cinema-70mm",
			Mode:            ModePortrait,
		},
		{
			ID:              "disco_flash",
			Label:           "Studio 54 Flash",
			Category:        PresetCategoryCreative,
			Emoji:           "🪩",
			Description:     "High-energy 70s disco glam.",
			MoodID:          "soft_laugh",
			VitalityLevelID: "vitality_1_polish",
			ArchetypeID:     "default",
			EraID:           "studio_54",
			SettingID:       "dancefloor",
			ManualEraText: `Generate a new photograph of the person in the provided image, captured in a candid moment on the dancefloor of Studio 54 in the late 1970s. Preserve their exact facial bone structure and unique identity markers. The final composition MUST be a 1:1 square aspect ratio.

A professional styling team has adapted their look. Hair is styled with 70s volume and movement (e.g., feathered layers, natural afro, voluminous curls), now showing the effects of two hours of dancing—a slight sheen of sweat at the hairline, natural motion blur. Makeup (if culturally appropriate) is glamorous with glitter, shimmer, and gloss, catching the light. Wardrobe is authentic to the era and suits their body—sequins, metallic fabric, or a silk halter top that shows fluid movement.

The scene is a crowded, energetic dancefloor. A hard, on-camera flash freezes them mid-laugh, creating a high-contrast, saturated look. Fragments of light from a disco ball speckle the scene, and there's a hazy, smoky atmosphere. They are not posing but are genuinely lost in the music, exuding joyful, liberated energy.

This is a lived-in moment. The final image should feel like an authentic, high-energy candid shot from a 35mm point-and-shoot camera, complete with film grain and vibrant, slightly shifted colors.`,
			StyleID:         "photo-real-iphone",
			Mode:            ModeImmersive,
		},
		{
			ID:              "y2k_diva",
			Label:           "Y2K Diva",
			Category:        PresetCategoryCreative,
			Emoji:           "✨",
			Description:     "Pop princess studio glam",
			MoodID:          "side_eye",
			VitalityLevelID: "vitality_1_polish",
			ArchetypeID:     "default",
			EraID:           "y2k_pop_star",
			SettingID:       "music_video",
			ManualEraText: `Generate a new photograph of the person in the provided image, styled as a Y2K pop star during a music video shoot (circa 2001). Preserve their exact facial bone structure and unique identity markers. The final composition MUST be a vertical 4:5 portrait.

A professional styling team has created their look. Hair is styled with period-authentic trends (e.g., chunky highlights, spiky pieces, sleek straightening) adapted to their hair type. Makeup (if appropriate) is glossy and futuristic, with frosted eyeshadow, shimmering lip gloss, and flawless skin. Wardrobe is iconic Y2K fashion—low-rise pants, a metallic crop top, or shimmering fabrics, all tailored to their body.

The setting is a minimalist, futuristic music video set with clean lines and vibrant, colored gel lighting (e.g., cool blues and hot pinks). They are caught in a confident, playful pose, giving a knowing side-eye to the camera. The lighting is crisp and editorial.

The final image should have the polished, high-gloss feel of an editorial fashion photograph from a magazine of that era.`,
			StyleID:         "editorial-vogue",
			Mode:            ModePortrait,
		},
		{
			ID:              "y2k_heartthrob",
			Label:           "Y2K Heartthrob",
			Category:        PresetCategoryCreative,
			Emoji:           "✨",
			Description:     "Boy band icon energy",
			MoodID:          "half_smile",
			VitalityLevelID: "vitality_1_polish",
			ArchetypeID:     "default",
			EraID:           "y2k_pop_star",
			SettingID:       "press_shoot",
			ManualEraText: `Generate a new photograph of the person in the provided image, styled as a Y2K-era heartthrob (circa 1999) during a press photoshoot. Preserve their exact facial bone structure and unique identity markers. The final composition MUST be a vertical 4:5 portrait.

A professional styling team has crafted their look. Hair is styled in an iconic look of the time (e.g., frosted tips, a center part, or a textured cut) adapted to their features. Their look is fresh and clean. Wardrobe is smart-casual Y2K—a crisp shirt, a stylish jacket, or a fine-gauge knit, perfectly fitted.

The setting is a professional photo studio against a seamless, brightly colored backdrop. The lighting is high-contrast and dramatic, creating a classic boy band album cover feel. They are looking directly at the camera with a confident, smoldering half-smile. The pose is relaxed but intentional.

The final image should have the sharp, polished quality of a high-end editorial portrait from that time, ready for a magazine cover.`,
			StyleID:         "editorial-vogue",
			Mode:            ModePortrait,
		},
		{
			ID:              "idol_stage",
			Label:           "Kpop Makeover Editorial",
			Category:        PresetCategoryCreative,
			Emoji:           "🎤",
			Description:     "K-Pop editorial perfection",
			MoodID:          "calm_power",
			VitalityLevelID: "vitality_1_polish",
			ArchetypeID:     "default",
			EraID:           "manual",
			ManualEraText: `Generate a new photograph of the person in the provided image, reimagined as a K-Pop idol in a high-fashion editorial shoot. Preserve their exact facial bone structure and unique identity markers. The final composition MUST be a vertical 4:5 portrait, resembling a 'photocard'.

A professional styling team has perfected their look. Hair is impeccably styled with a modern, editorial edge—perhaps a bold color or a sharp cut, with flawless texture and shine. Makeup is clean and perfect, emphasizing luminous "glass skin" and defining their features in a way that is both powerful and beautiful. Wardrobe is avant-garde and meticulously styled, fitting them perfectly.

The setting is a minimalist set with clean architectural lines and soft, diffused pastel lighting. The mood is one of calm power and confidence. They are looking directly into the lens with a captivating gaze.

The final image must be of the highest editorial quality, with perfect lighting, sharp focus, and a refined color grade, suitable for the cover of a fashion magazine.`,
			StyleID:         "editorial-vogue",
			Mode:            ModePortrait,
		},
		{
			ID:              "dreamhouse_muse",
			Label:           "Dreamhouse Muse",
			Category:        PresetCategoryCreative,
			Emoji:           "💖",
			Description:     "High-fashion Barbiecore glam.",
			MoodID:          "soft_laugh",
			VitalityLevelID: "vitality_1_polish",
			ArchetypeID:     "default",
			EraID:           "manual",
			ManualEraText: `Generate a new photograph of the person in the provided image, embodying a high-fashion, gender-inclusive 'Barbiecore' aesthetic. Preserve their exact facial bone structure and unique identity markers. The final composition MUST be a vertical 4:5 portrait.

The scene is a hyper-stylized Dreamhouse interior with glossy pink surfaces, luxurious textures, and clean, high-key studio lighting. A professional styling team has curated their look. Hair and makeup are polished and glamorous. Their wardrobe is high-fashion, celebrating a vibrant pink-centric world with a confident and fun energy. The vibe is less about being a doll, and more about being a high-fashion muse inspired by the aesthetic.

They are caught in a moment of soft laughter, with relaxed shoulders and a genuine expression of joy. The final image should be a high-fidelity, candid-style photograph with a glossy but natural skin finish.`,
			StyleID:         "photo-real-iphone",
			Mode:            ModePortrait,
		},
		{
			ID:              "ghibli_meadow",
			Label:           "Ghibli Meadow",
			Category:        PresetCategoryCreative,
			Emoji:           "🌿",
			Description:     "Hand-painted whimsical escape",
			MoodID:          "distant_gaze",
			VitalityLevelID: "vitality_0_off",
			ArchetypeID:     "default",
			EraID:           "manual",
			ManualEraText: `Generate a new illustration of the person in the provided image, rendered in the iconic Ghibli art style. Preserve their recognizable likeness and key facial features, translated into the soft, hand-painted aesthetic. The final composition MUST be a 1:1 square aspect ratio.

The scene is a lush Ghibli-style meadow. Tall, soft grasses sway in a gentle breeze under a beautiful watercolor sky, with soft, dappled sunlight filtering through. The character is looking off into the distance with a contemplative, serene gaze.

The final image must capture the tender, whimsical atmosphere of a Ghibli film. The style should be painterly, with soft color palettes, naturalistic shading, and clean edges, avoiding heavy outlines or Western comic book styles.`,
			StyleID:         "ghibli",
			Mode:            ModeImmersive,
		},
		{
			ID:              "library_light",
			Label:           "Library Light",
			Category:        PresetCategoryCreative,
			Emoji:           "📚",
			Description:     "Dark academia contemplation",
			MoodID:          "half_smile",
			VitalityLevelID: "vitality_0_off",
			ArchetypeID:     "default",
			EraID:           "dark_academia",
			SettingID:       "library_nook",
			ManualEraText: `Generate a new photograph of the person in the provided image, embodying the 'Dark Academia' aesthetic. Preserve their exact facial bone structure and unique identity markers. The final composition MUST be a vertical 4:5 portrait.

The scene is a cozy, dimly lit library nook, surrounded by old, leather-bound books. A single source of warm light, perhaps from a desk lamp, creates a dramatic chiaroscuro effect, illuminating them while casting deep shadows in the background. A professional styling team has dressed them in scholarly attire, like tweed or a wool sweater, that fits them perfectly.

They are captured in a quiet moment of contemplation, holding a heavy book, with a composed, knowing half-smile. The atmosphere is studious, intimate, and timeless. The final image should have the rich, cinematic quality of a 70mm film still, with deep tones and a subtle film grain.`,
			StyleID:         "cinema-70mm",
			Mode:            ModePortrait,
		},
		{
			ID:              "linkedin_executive",
			Label:           "Executive Presence",
			Category:        PresetCategoryProfessional,
			Emoji:           "🎯",
			Description:     "Authoritative confidence for C-suite and senior leaders",
			MoodID:          "calm_power",
			VitalityLevelID: "vitality_1_polish",
			ArchetypeID:     "default",
			EraID:           "manual",
			ManualEraText: `Generate a NEW professional LinkedIn headshot photograph of the person in the provided image. The final composition must be a standard 4:5 vertical headshot portrait.

SUBJECT:
Preserve facial bone structure, unique identity markers, and recognizable likeness. The emotional core: calm, confident authority—a subtle closed-lip smile or slight knowing smirk, direct steady gaze, shoulders open and relaxed. They exude executive presence: poised, strategic, trustworthy.

PROFESSIONAL STYLING TEAM:
Hair is impeccably groomed—freshly cut with executive polish and natural shine. For women: sophisticated makeup with defined brows, subtle contour, healthy glow, sophisticated nude or berry lip. For men: clean-shaven or precisely groomed facial hair. WARDROBE: Rich jewel tones (sapphire blue, deep burgundy, emerald) or warm executive neutrals (camel, warm charcoal, cognac brown). Structured blazer or tailored shirt in premium fabric—perfect fit, pressed, professional. NO gray, beige, or stark black.

LIGHTING MANDATE:
High-key three-point lighting setup. Key light: large octagonal softbox positioned at 45° creating even, luminous f/2.8-f/4 exposure across the face. Fill light at 50% key intensity eliminating ALL shadow darkness and creating bright, open look. Subtle hairlight providing gentle separation. COLOR TEMPERATURE: 5200K-5600K (neutral-warm professional). EXPOSURE: Slightly overexposed (+0.3 stops) for luminous, healthy skin. Background MUST be as bright and evenly lit as subject—absolutely no dark shadowy areas.

SCENE & COMPOSITION:
Portrait headshot: 85mm lens equivalent, eye level or slightly above, f/2.8-f/4 depth creating gentle background blur. Subject centered or on power rule-of-thirds. Background: soft gradient in warm sophisticated tones (warm gray-blue, soft taupe, champagne) or subtly blurred modern office with bright windows—always luminous, never dark. The overall aesthetic is polished, confident, and premium without being cold or unapproachable.

EXPRESSION & POSE:
Direct eye contact with camera—steady, confident, engaging. Closed-lip smile or subtle executive smirk. Body at slight three-quarter angle, shoulders back and open, head turned to face camera directly. Posture communicates calm power.

CRITICAL PROHIBITIONS:
No dark/shadowy backgrounds. No moody dramatic lighting. No high-contrast side shadows. No gray or beige clothing or walls. No side profiles or looking away. No black suits unless paired with vibrant shirt/blouse. No flat sterile lighting. No over-retouched plastic skin or frozen expression. No corporate gray aesthetic.

QUALITY STANDARDS:
Professional headshot quality equivalent to $500+ photographer session. 85mm portrait lens, f/2.8-f/4. Sharp focus on eyes. Natural skin texture with editorial retouching. Professional color grading with warm bias. Captures authority and approachability simultaneously.

` + universalNegative,
			StyleID:         "photo-real-iphone",
			Mode:            ModePortrait,
		},
		{
			ID:              "linkedin_creative",
			Label:           "Creative Confidence",
			Category:        PresetCategoryProfessional,
			Emoji:           "🎨",
			Description:     "Authentic personality for designers and marketers",
			MoodID:          "half_smile",
			VitalityLevelID: "vitality_1_polish",
			ArchetypeID:     "default",
			EraID:           "manual",
			ManualEraText: `Generate a NEW professional LinkedIn headshot photograph of the person in the provided image. The final composition must be a standard 4:5 vertical headshot portrait.

SUBJECT:
Preserve facial bone structure, unique identity markers, and recognizable likeness. The emotional core: genuine warmth, creative energy—a real toothy smile with natural eye crinkle, relaxed shoulders, authentic presence. They exude creative confidence: approachable, innovative, human.

PROFESSIONAL STYLING TEAM:
Hair styled with intentional personality—natural movement, healthy shine, modern cut that shows individuality (not corporate uniform). For women: fresh, modern makeup—defined brows, healthy flush, maybe a bold lip (berry, coral) or natural nude. For men: well-groomed with personality (trimmed beard, styled hair). WARDROBE: Unexpected creative colors—burnt orange, deep teal, mustard yellow, sage green, terracotta, dusty rose. Quality casual-professional: blazer over interesting shirt, structured knit, denim jacket over button-down. Perfect fit, intentional style. NO gray, beige, black, or boring corporate.

LIGHTING MANDATE:
Bright, natural-feel lighting setup. Large soft key light (window or diffused strobe) at 30-45° creating warm, open illumination. Gentle fill keeping shadows soft and friendly—no darkness anywhere. COLOR TEMPERATURE: 5400K-5800K (bright daylight warmth). EXPOSURE: Bright and optimistic—overexpose slightly (+0.5 stops) for that sun-kissed glow. Background evenly lit and colorful—never dark or shadowy.

SCENE & COMPOSITION:
Environmental portrait: 50mm lens equivalent feel, eye level, f/2.8-f/4 for soft background blur revealing context. Setting: bright modern workspace, colorful wall, outdoor natural light, or creative studio with personality. Background includes hints of creative environment (books, plants, interesting architecture) but subject remains clear focal point. Overall aesthetic is vibrant, modern, approachable.

EXPRESSION & POSE:
Full genuine toothy smile—natural, warm, inviting. Direct eye contact with friendly energy. Body at relaxed angle, one shoulder slightly forward, head turned to camera. Posture is open and approachable—no stiff formality. Maybe one hand naturally touching collar or adjusting glasses—signs of life and authenticity.

CRITICAL PROHIBITIONS:
No dark/shadowy backgrounds. No moody dramatic lighting. No gray/beige anywhere. No stiff corporate posing. No side profiles or looking away. No boring "business professional" monotony. No over-retouched plastic skin. No lifeless expressions. No stark black clothing. Creative does NOT mean unprofessional—this is still polished and intentional.

QUALITY STANDARDS:
Professional headshot quality with creative edge. 50mm lens, f/2.8-f/4. Sharp focus on eyes. Natural skin texture with light editorial retouching. Vibrant color grading emphasizing warmth and personality.

` + universalNegative,
			StyleID:         "photo-real-iphone",
			Mode:            ModePortrait,
		},
		{
			ID:              "linkedin_tech",
			Label:           "Future Forward",
			Category:        PresetCategoryProfessional,
			Emoji:           "💡",
			Description:     "Approachable expertise for tech innovators",
			MoodID:          "half_smile",
			VitalityLevelID: "vitality_1_polish",
			ArchetypeID:     "default",
			EraID:           "manual",
			ManualEraText: `Generate a NEW professional LinkedIn headshot photograph of the person in the provided image. The final composition must be a standard 4:5 vertical headshot portrait.

SUBJECT:
Preserve facial bone structure, unique identity markers, and recognizable likeness. The emotional core: intelligent warmth—friendly toothy smile, direct engaged gaze, slight forward lean suggesting energy and focus. They exude approachable expertise: smart, innovative, human-centered.

PROFESSIONAL STYLING TEAM:
Hair is modern and fresh—clean lines, natural texture, contemporary styling that says "current" not "dated." For women: fresh, minimal makeup—groomed brows, healthy natural skin, maybe a subtle lip. For men: clean or intentionally styled facial hair. WARDROBE: Modern tech aesthetic—crisp white Oxford, chambray button-down, electric blue sweater, quality charcoal henley, or blazer over tech-casual. Colors: bright clean (white, crisp blue, charcoal with pops of color). Perfect modern fit—not stuffy, not sloppy. NO beige, NO dated styles, NO heavy suits.

LIGHTING MANDATE:
Clean, bright, contemporary lighting. Large soft key creating even f/2.8 illumination across face—think Silicon Valley founder shoot. Subtle fill eliminating shadows while maintaining dimension. COLOR TEMPERATURE: 5600K-6000K (cool-neutral modern). EXPOSURE: Bright and clean (+0.3 stops over) for that optimistic startup energy. Background bright and modern—clean white, soft blue-gray gradient, or naturally lit contemporary space.

SCENE & COMPOSITION:
Modern portrait: 85mm lens, eye level, f/2.8-f/4 depth. Clean contemporary aesthetic—either seamless modern backdrop (white, soft tech-blue, warm light gray) or naturally lit outdoor/modern office with subtle blur. Environment feels current, optimistic, forward-thinking. Composition is clean and uncluttered.

EXPRESSION & POSE:
Genuine friendly smile showing teeth—approachable but intelligent. Direct eye contact with engaged, forward-thinking energy. Body at slight angle, shoulders open, maybe one shoulder slightly forward suggesting momentum. Head directly facing camera.

CRITICAL PROHIBITIONS:
No dark/moody backgrounds. No dramatic lighting. No gray/beige corporate dullness. No stiff formal posing. No looking away from camera. No dated hairstyles or clothing. No heavy business suits. No over-processed skin. This is modern professional, not 1990s corporate headshot.

QUALITY STANDARDS:
Contemporary professional quality—think $400-600 Silicon Valley photographer. 85mm lens, f/2.8-f/4. Tack-sharp eyes. Natural skin texture with subtle retouching. Clean, modern color grading.

` + universalNegative,
			StyleID:         "photo-real-iphone",
			Mode:            ModePortrait,
		},
		{
			ID:              "linkedin_sales",
			Label:           "Trusted Partner",
			Category:        PresetCategoryProfessional,
			Emoji:           "🤝",
			Description:     "Maximum warmth for relationship-builders",
			MoodID:          "soft_laugh",
			VitalityLevelID: "vitality_1_polish",
			ArchetypeID:     "default",
			EraID:           "manual",
			ManualEraText: `Generate a NEW professional LinkedIn headshot photograph of the person in the provided image. The final composition must be a standard 4:5 vertical headshot portrait.

SUBJECT:
Preserve facial bone structure, unique identity markers, and recognizable likeness. The emotional core: maximum approachability—big genuine toothy smile, warm crinkled eyes, open relaxed posture. They exude trustworthy warmth: likeable, reliable, service-oriented, the person clients WANT to work with.

PROFESSIONAL STYLING TEAM:
Hair is polished and approachable—clean, styled, healthy shine, nothing too edgy or corporate-stiff. For women: warm makeup palette—defined brows, healthy glow, warm peachy-pink blush, friendly lip color (coral, rose, warm nude). For men: clean-shaven or neatly groomed, fresh haircut. WARDROBE: Approachable warm colors—soft blue, coral, lavender, warm gray, cream, peach, sky blue. Quality professional pieces: blazer, button-down, knit, or blouse in colors that make people feel comfortable. Perfect fit, friendly vibe. NO dark intimidating colors, NO gray/beige.

LIGHTING MANDATE:
Maximum warmth and openness. Large soft key light (beauty dish or large octabox) creating bright, even, flattering f/2.8 illumination. Strong fill light ensuring NO shadows—this person has nothing to hide. COLOR TEMPERATURE: 5400K-5800K (warm daylight). EXPOSURE: Bright and inviting (+0.5 stops over) for that sun-soaked approachability. Background MUST be bright, warm, and welcoming—never dark or shadowy. Think "walking into a sunny room."

SCENE & COMPOSITION:
Warm portrait: 85mm lens, eye level, f/2.8-f/4 creating soft flattering background. Setting: bright warm backdrop (cream, soft blue, warm light gray, peachy) or naturally lit space with windows suggesting openness and transparency. Environment feels inviting, trustworthy, like a welcoming office or bright airy space.

EXPRESSION & POSE:
MAXIMUM smile—full toothy grin, natural eye crinkle, genuine warmth radiating. Direct eye contact with welcoming energy. Body at slight angle, shoulders relaxed and open, perhaps slight lean-in suggesting engagement. Head facing camera directly.

CRITICAL PROHIBITIONS:
No dark/shadowy backgrounds. No dramatic moody lighting. No gray/beige dullness. No intimidating power poses. No closed-mouth smiles (this role needs MAXIMUM warmth). No side profiles or looking away. No dark serious clothing. No over-retouched perfection. Authentic warmth beats artificial polish.

QUALITY STANDARDS:
Professional headshot quality optimized for likeability and trust. 85mm portrait lens, f/2.8-f/4. Sharp eyes. Natural skin texture with flattering retouching. Warm color grading—golden hour feel even if shot indoors.

` + universalNegative,
			StyleID:         "photo-real-iphone",
			Mode:            ModePortrait,
		},
		{
			ID:              "linkedin_advisor",
			Label:           "Seasoned Expert",
			Category:        PresetCategoryProfessional,
			Emoji:           "📊",
			Description:     "Thoughtful wisdom for strategic advisors",
			MoodID:          "calm_power",
			VitalityLevelID: "vitality_1_polish",
			ArchetypeID:     "default",
			EraID:           "manual",
			ManualEraText: `Generate a NEW professional LinkedIn headshot photograph of the person in the provided image. The final composition must be a standard 4:5 vertical headshot portrait.

SUBJECT:
Preserve facial bone structure, unique identity markers, and recognizable likeness. The emotional core: thoughtful confidence—slight knowing smile or serious intelligent expression, direct steady gaze, composed posture. They exude seasoned expertise: wise, reliable, strategic thinking, depth of experience.

PROFESSIONAL STYLING TEAM:
Hair is refined and polished—immaculate grooming, sophisticated style, professional shine. For women: refined makeup—perfectly groomed brows, sophisticated neutral palette, subtle contour, classic lip (nude, berry, or rose). For men: distinguished grooming, clean or silver-enhanced beard if worn. WARDROBE: Professional depth colors—burgundy, deep plum, forest green, navy, camel, warm charcoal, cognac brown. Quality investment pieces: tailored blazer, fine-gauge knit, classic button-down in rich fabrics. Impeccable fit suggesting attention to detail. NO cheap fabrics, NO gray/beige, NO trendy fast fashion.

LIGHTING MANDATE:
Refined professional lighting. Controlled three-point setup: key light (large softbox) at 45° creating f/2.8-f/4 even exposure with subtle modeling. Fill at 40% maintaining slight dimension while keeping overall brightness. Hairlight for polish. COLOR TEMPERATURE: 5200K-5400K (neutral-warm professional). EXPOSURE: Properly exposed (+0.2 stops) for healthy glow without being overly bright. Background well-lit in sophisticated tones—never dark or murky.

SCENE & COMPOSITION:
Classic portrait: 85-105mm lens equivalent, eye level, f/2.8-f/4 creating refined background separation. Setting: sophisticated backdrop in rich muted tones (deep navy-gray, warm taupe, soft olive, champagne) or subtly blurred professional environment (office with books, elegant architecture). Aesthetic is timeless, refined, substantial—not trendy, not dated.

EXPRESSION & POSE:
Thoughtful half-smile or serious intelligent expression with slight warmth in eyes—not cold, not over-friendly, perfectly balanced. Direct eye contact suggesting depth and consideration. Body at three-quarter angle, excellent posture, shoulders back, head turned to camera. Pose communicates "I've seen this before, and I know how to solve it."

CRITICAL PROHIBITIONS:
No dark/shadowy backgrounds. No overly dramatic lighting. No gray/beige mediocrity. No overly casual "buddy" energy (wrong for this role). No trendy styling that will date the photo. No stiff corporate coldness. No looking away from camera. Find the balance: approachable expertise.

QUALITY STANDARDS:
Premium professional headshot quality—$600+ photographer level. 85-105mm lens, f/2.8-f/4. Crystal-sharp eyes. Refined skin retouching maintaining texture. Sophisticated color grading with slight warmth.

` + universalNegative,
			StyleID:         "photo-real-iphone",
			Mode:            ModePortrait,
		},
	}
}
