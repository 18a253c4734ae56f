package seed

// 安全意识题库种子数据
// 分类: phishing, passwords, wifi, mfa, general

type QuestionSeed struct {
	QuestionText  string
	Options       []string
	CorrectAnswer string
	Explanation   string
	Category      string
	Difficulty    string
	PointsValue   int
}

var Questions = []QuestionSeed{
	// 钓鱼邮件
	{
		QuestionText: "You receive an email claiming to be from campus IT asking you to verify your login credentials by clicking a link. What should you do?",
		Options: []string{
			"Click the link and enter your credentials to verify",
			"Reply to the email asking if it's legitimate",
			"Delete the email and report it as phishing",
			"Forward it to your friends to warn them",
		},
		CorrectAnswer: "Delete the email and report it as phishing",
		Explanation:   "IT departments will never ask you to verify credentials via email. This is a classic phishing attempt. Always report suspicious emails and never click unknown links.",
		Category:      "phishing",
		Difficulty:    "easy",
		PointsValue:   10,
	},
	{
		QuestionText: "An email appears to be from your professor with an attachment labeled 'Final_Exam_Answers.pdf'. The sender's email looks slightly off. What's the safest action?",
		Options: []string{
			"Open the attachment to see if it's real",
			"Contact your professor through official channels to verify",
			"Download it but don't open it yet",
			"Reply asking if they sent it",
		},
		CorrectAnswer: "Contact your professor through official channels to verify",
		Explanation:   "Attackers often impersonate authority figures. Always verify suspicious emails through official channels (like the course portal or their official university email) before opening attachments.",
		Category:      "phishing",
		Difficulty:    "medium",
		PointsValue:   15,
	},
	{
		QuestionText: "Which of these is the BEST indicator that an email might be a phishing attempt?",
		Options: []string{
			"It has spelling errors",
			"It creates urgency and threatens account closure",
			"It comes from an unknown sender",
			"All of the above",
		},
		CorrectAnswer: "All of the above",
		Explanation:   "Phishing emails often combine multiple red flags: urgency/threats, poor grammar, and suspicious senders. Being aware of all these indicators helps you stay safe.",
		Category:      "phishing",
		Difficulty:    "easy",
		PointsValue:   10,
	},

	// 密码安全
	{
		QuestionText: "You're creating a new password for your banking app. Which is the MOST secure option?",
		Options: []string{
			"Campus2024!",
			"MyDog'sName123",
			"Tr0ub4dor&3",
			"correct-horse-battery-staple-2024",
		},
		CorrectAnswer: "correct-horse-battery-staple-2024",
		Explanation:   "Longer passphrases with random words are more secure than shorter complex passwords. Length matters more than complexity. This password is both long and memorable.",
		Category:      "passwords",
		Difficulty:    "medium",
		PointsValue:   15,
	},
	{
		QuestionText: "How many different passwords should you use across all your accounts?",
		Options: []string{
			"One strong password for everything",
			"Two passwords: one for important accounts, one for others",
			"A unique password for every account",
			"Three passwords rotated monthly",
		},
		CorrectAnswer: "A unique password for every account",
		Explanation:   "Using unique passwords prevents a breach on one site from compromising all your accounts. Use a password manager to keep track of them all.",
		Category:      "passwords",
		Difficulty:    "easy",
		PointsValue:   10,
	},
	{
		QuestionText: "Your friend asks to borrow your laptop to check their email quickly. What's the safest approach?",
		Options: []string{
			"Let them use it while you watch",
			"Log them into a guest account",
			"Give them your password so they can log in themselves",
			"Tell them to use their phone instead",
		},
		CorrectAnswer: "Log them into a guest account",
		Explanation:   "Guest accounts prevent access to your personal files and saved passwords. Never share your password, even with friends you trust.",
		Category:      "passwords",
		Difficulty:    "medium",
		PointsValue:   15,
	},

	// 公共WiFi
	{
		QuestionText: "You're at a coffee shop and see two WiFi networks: 'CoffeeShop-Guest' and 'CoffeeShop_Free_WiFi'. Which should you choose?",
		Options: []string{
			"CoffeeShop_Free_WiFi because it's free",
			"CoffeeShop-Guest because it looks official",
			"Ask the staff which is the legitimate network",
			"Use your mobile hotspot instead",
		},
		CorrectAnswer: "Ask the staff which is the legitimate network",
		Explanation:   "Attackers create fake WiFi networks with convincing names (evil twin attacks). Always verify the official network name with staff before connecting.",
		Category:      "wifi",
		Difficulty:    "medium",
		PointsValue:   15,
	},
	{
		QuestionText: "You're connected to the campus secure network in the library. Is it safe to check your bank account?",
		Options: []string{
			"Yes, the campus network is encrypted and secure",
			"No, never use shared networks for banking",
			"Only if you use a VPN",
			"Yes, but only if the website uses HTTPS",
		},
		CorrectAnswer: "Yes, the campus network is encrypted and secure",
		Explanation:   "The campus secure network uses WPA2/WPA3 encryption and requires authentication, making it secure for sensitive activities. However, always verify you're on the real network.",
		Category:      "wifi",
		Difficulty:    "hard",
		PointsValue:   20,
	},
	{
		QuestionText: "What's the main risk of using public WiFi at airports or cafes?",
		Options: []string{
			"Slower internet speeds",
			"Man-in-the-middle attacks where hackers intercept your data",
			"Your device battery drains faster",
			"You might get charged for usage",
		},
		CorrectAnswer: "Man-in-the-middle attacks where hackers intercept your data",
		Explanation:   "On unsecured public WiFi, attackers can position themselves between you and the network, intercepting passwords, emails, and other sensitive data.",
		Category:      "wifi",
		Difficulty:    "easy",
		PointsValue:   10,
	},

	// 多因素认证
	{
		QuestionText: "What is the main benefit of enabling Multi-Factor Authentication (MFA)?",
		Options: []string{
			"It makes logging in faster",
			"It protects your account even if your password is stolen",
			"It eliminates the need for a strong password",
			"It prevents phishing emails",
		},
		CorrectAnswer: "It protects your account even if your password is stolen",
		Explanation:   "MFA adds an extra layer of security. Even if someone steals your password, they can't access your account without the second factor (like your phone).",
		Category:      "mfa",
		Difficulty:    "easy",
		PointsValue:   10,
	},
	{
		QuestionText: "Which MFA method is considered MOST secure?",
		Options: []string{
			"SMS text message codes",
			"Email verification codes",
			"Authenticator app (like Duo Mobile)",
			"Security questions",
		},
		CorrectAnswer: "Authenticator app (like Duo Mobile)",
		Explanation:   "Authenticator apps are more secure than SMS (which can be intercepted) or email. They generate time-based codes that work even offline.",
		Category:      "mfa",
		Difficulty:    "medium",
		PointsValue:   15,
	},
	{
		QuestionText: "You receive an MFA push notification but you didn't try to log in. What should you do?",
		Options: []string{
			"Approve it - it's probably a mistake",
			"Deny it and immediately change your password",
			"Ignore it",
			"Approve it and then change your password",
		},
		CorrectAnswer: "Deny it and immediately change your password",
		Explanation:   "An unexpected MFA request means someone has your password and is trying to access your account. Deny it and change your password immediately.",
		Category:      "mfa",
		Difficulty:    "medium",
		PointsValue:   15,
	},

	// 通用安全
	{
		QuestionText: "You're working on a group project in the library. You need to use the restroom. What should you do with your laptop?",
		Options: []string{
			"Leave it open - you'll only be gone a minute",
			"Lock the screen (Windows+L or Ctrl+Cmd+Q)",
			"Close the lid but don't lock it",
			"Ask a stranger to watch it",
		},
		CorrectAnswer: "Lock the screen (Windows+L or Ctrl+Cmd+Q)",
		Explanation:   "Always lock your screen when stepping away, even briefly. Unattended, unlocked laptops are a major security risk.",
		Category:      "general",
		Difficulty:    "easy",
		PointsValue:   10,
	},
	{
		QuestionText: "A website asks you to disable your antivirus to download a 'required' file for class. What should you do?",
		Options: []string{
			"Disable it temporarily to get the file",
			"Don't download the file and report it to your professor",
			"Download it but scan it first",
			"Ask your classmates if they did it",
		},
		CorrectAnswer: "Don't download the file and report it to your professor",
		Explanation:   "Legitimate software never requires disabling antivirus. This is a major red flag for malware. Always report suspicious requirements to your instructor.",
		Category:      "general",
		Difficulty:    "easy",
		PointsValue:   10,
	},
	{
		QuestionText: "What does HTTPS in a website URL indicate?",
		Options: []string{
			"The website is safe from all threats",
			"The connection between you and the website is encrypted",
			"The website is verified by the university",
			"The website loads faster",
		},
		CorrectAnswer: "The connection between you and the website is encrypted",
		Explanation:   "HTTPS encrypts data between you and the website, protecting it from interception. However, it doesn't guarantee the site itself is trustworthy - phishing sites can also use HTTPS.",
		Category:      "general",
		Difficulty:    "medium",
		PointsValue:   15,
	},
	{
		QuestionText: "You find a USB drive in the parking lot. What should you do?",
		Options: []string{
			"Plug it into your computer to see who it belongs to",
			"Turn it in to lost and found without plugging it in",
			"Keep it - finders keepers",
			"Plug it into a library computer to check the contents",
		},
		CorrectAnswer: "Turn it in to lost and found without plugging it in",
		Explanation:   "Unknown USB drives can contain malware that automatically installs when plugged in. This is a common attack vector. Never plug in unknown devices.",
		Category:      "general",
		Difficulty:    "easy",
		PointsValue:   10,
	},
	{
		QuestionText: "How often should you update your software and operating system?",
		Options: []string{
			"Only when you have time",
			"Once a year",
			"As soon as updates are available",
			"Never - updates cause problems",
		},
		CorrectAnswer: "As soon as updates are available",
		Explanation:   "Updates often contain critical security patches. Delaying updates leaves your system vulnerable to known exploits that attackers actively target.",
		Category:      "general",
		Difficulty:    "easy",
		PointsValue:   10,
	},
	{
		QuestionText: "Someone on social media claims they can get you free dining credit if you give them your login. What should you do?",
		Options: []string{
			"Give them your login - free food!",
			"Create a temporary password to give them",
			"Report them for attempting to steal credentials",
			"Ask them to prove it first",
		},
		CorrectAnswer: "Report them for attempting to steal credentials",
		Explanation:   "This is social engineering - manipulating people into giving up sensitive information. Never share credentials, no matter what someone promises. Report these scams immediately.",
		Category:      "general",
		Difficulty:    "easy",
		PointsValue:   10,
	},
	{
		QuestionText: "What's the safest way to share sensitive files with your project group?",
		Options: []string{
			"Email them as attachments",
			"Upload to a drive with link sharing set to 'anyone with link'",
			"Use the university cloud drive with specific person permissions",
			"Post them in a private Discord server",
		},
		CorrectAnswer: "Use the university cloud drive with specific person permissions",
		Explanation:   "The university cloud drive is encrypted and allows you to control exactly who can access files. 'Anyone with link' sharing can expose files if the link is leaked.",
		Category:      "general",
		Difficulty:    "medium",
		PointsValue:   15,
	},
	{
		QuestionText: "You're using a public computer in the library. What should you do before leaving?",
		Options: []string{
			"Just close the browser",
			"Log out of all accounts and clear browser history",
			"Shut down the computer",
			"Delete your browsing history only",
		},
		CorrectAnswer: "Log out of all accounts and clear browser history",
		Explanation:   "Public computers may save your login sessions and browsing data. Always log out completely and clear your history to prevent the next user from accessing your accounts.",
		Category:      "general",
		Difficulty:    "easy",
		PointsValue:   10,
	},
}
