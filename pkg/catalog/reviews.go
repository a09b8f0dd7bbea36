package catalog

// Review phrasing per category. The first entry doubles as the
// fallback for categories without their own set.
var defaultReviews = []ReviewTemplates{
	{
		Category: "Electronics",
		Positive: []string{
			"Absolutely love this {product}! The quality is outstanding and it works exactly as described.",
			"Best {category} purchase I've made in years. Highly recommend to anyone looking for quality.",
			"Perfect! Fast shipping, great packaging, and the {product} exceeded my expectations.",
			"Worth every penny. The {product} is exactly what I needed and works flawlessly.",
			"Amazing product! Great value for money and the quality is top-notch.",
		},
		Neutral: []string{
			"Good {product}, works as expected. Nothing extraordinary but gets the job done.",
			"Decent quality for the price. The {product} is okay but could be better.",
			"It's fine. Does what it's supposed to do but I've seen better in this price range.",
			"Average {product}. Not bad but not great either. Would consider other options next time.",
			"Works well enough. The {product} is functional but has some minor issues.",
		},
		Negative: []string{
			"Disappointed with this {product}. Quality is not what I expected for the price.",
			"Had issues with this {product} from day one. Customer service was not helpful.",
			"Poor quality. The {product} broke after just a few weeks of use.",
			"Not worth the money. The {product} doesn't work as advertised.",
			"Would not recommend. The {product} is cheaply made and doesn't last.",
		},
	},
	{
		Category: "Clothing",
		Positive: []string{
			"Perfect fit and great quality! The {product} looks exactly like the picture.",
			"Love this {product}! Comfortable, stylish, and true to size.",
			"Excellent fabric and construction on this {product}. Very happy with this purchase.",
			"Great {product}! Fits perfectly and the material is soft and comfortable.",
			"Beautiful {product}! The color and fit are perfect. Will definitely buy again.",
		},
		Neutral: []string{
			"Nice {product} but the sizing runs a bit small. Good quality overall.",
			"Decent {product}. The material is okay but not as soft as I expected.",
			"It's fine. The {product} fits okay but the color is slightly different than pictured.",
			"Good quality but the {product} is a bit overpriced for what you get.",
			"Average {product}. Nothing special but it serves its purpose.",
		},
		Negative: []string{
			"Poor quality. The {product} ripped after just one wash.",
			"Terrible fit. The {product} is way too small despite ordering the correct size.",
			"Cheap material. The {product} doesn't look anything like the picture.",
			"Waste of money. The {product} is poorly made and uncomfortable.",
			"Would not recommend. The {product} is overpriced for such poor quality.",
		},
	},
	{
		Category: "Beauty",
		Positive: []string{
			"Amazing {product}! The quality is fantastic and it works exactly as described.",
			"Love this {product}! Great pigmentation and long-lasting wear.",
			"Perfect! The {product} exceeded my expectations and arrived quickly.",
			"Excellent {product}! Great value for money and the results are outstanding.",
			"Best {product} I've tried! Highly recommend to anyone looking for quality.",
		},
		Neutral: []string{
			"Good {product}. Works well but the packaging could be better.",
			"Decent quality. The {product} is okay but I've used better in this price range.",
			"It's fine. The {product} does what it's supposed to do but nothing special.",
			"Average {product}. Not bad but not great either. Would consider other options.",
			"Works okay. The {product} is functional but has some minor issues.",
		},
		Negative: []string{
			"Disappointed with this {product}. Quality is not what I expected.",
			"Poor quality. The {product} doesn't work as advertised and was a waste of money.",
			"Terrible {product}. The formula is bad and it doesn't last at all.",
			"Would not recommend. The {product} is cheaply made and doesn't deliver results.",
			"Waste of money. The {product} is overpriced for such poor quality.",
		},
	},
	{
		Category: "Home",
		Positive: []string{
			"The {product} looks great and was easy to set up. Very happy with it.",
			"Excellent quality for the price. The {product} fits perfectly in our home.",
			"Love this {product}! Sturdy, well made, and exactly as pictured.",
			"Great addition to the house. The {product} works beautifully every day.",
		},
		Neutral: []string{
			"The {product} is okay. Assembly took longer than expected.",
			"Decent {product} for the price, though the finish could be better.",
			"It's fine. The {product} does the job but feels a little flimsy.",
		},
		Negative: []string{
			"The {product} arrived damaged and the replacement took weeks.",
			"Poor quality. The {product} started falling apart within a month.",
			"Not as described. The {product} is much smaller than it looks online.",
		},
	},
	{
		Category: "Sports",
		Positive: []string{
			"The {product} held up great through daily workouts. Highly recommend.",
			"Excellent gear! The {product} is comfortable and built to last.",
			"Love this {product}! Perfect for training and great quality.",
		},
		Neutral: []string{
			"The {product} is decent but nothing special for the price.",
			"Does the job. The {product} is fine for casual use.",
		},
		Negative: []string{
			"The {product} wore out after a few sessions. Disappointed.",
			"Not worth it. The {product} feels cheap compared to similar gear.",
		},
	},
	{
		Category: "Toys",
		Positive: []string{
			"My kids love the {product}! Hours of fun and well made.",
			"Great gift! The {product} was a huge hit at the birthday party.",
			"Sturdy and entertaining. The {product} gets played with every day.",
		},
		Neutral: []string{
			"The {product} is fun but a few pieces feel fragile.",
			"Okay {product}. Kept the kids busy for a while.",
		},
		Negative: []string{
			"Broke within a week. The {product} is not worth the price.",
			"Disappointing. The {product} looks much better in the photos.",
		},
	},
}
