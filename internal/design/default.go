package design

import "github.com/givebridge/sharepage/internal/model"

// DefaultDesign returns the built-in starting template. It is a pure factory:
// every call returns a fresh value, so no caller can mutate a shared
// instance. Used both as the load-time fallback for links with no saved
// design and as the editor's new-design seed. Never persisted automatically.
func DefaultDesign() model.TemplateDesign {
	return model.TemplateDesign{
		HTML:           defaultHTML,
		CSS:            defaultCSS,
		AdditionalData: map[string]any{},
	}
}

const defaultHTML = `<div class="page">
  <header class="hero">
    <img class="avatar" src="{{USER_AVATAR}}" alt="{{USER_NAME}}">
    <h1>{{USER_NAME}}</h1>
    <p class="contact">{{USER_EMAIL}} &middot; <a href="{{PROFILE_WEBSITE}}">{{PROFILE_WEBSITE}}</a></p>
  </header>

  <section class="about">
    <h2>About us</h2>
    <p>{{PROFILE_DESCRIPTION}}</p>
    <p class="address">{{PROFILE_ADDRESS}}</p>
  </section>

  <section class="credentials">
    <h2>Credentials</h2>
    <ul>
      <li>Registration number: {{PROFILE_REG_NUMBER}}</li>
      <li>80G certified: {{PROFILE_80G}}</li>
      <li>12A certified: {{PROFILE_12A}}</li>
    </ul>
  </section>

  <section class="campaigns">
    <h2>Our campaigns</h2>
    {{CAMPAIGNS_HTML}}
  </section>
</div>`

const defaultCSS = `body {
  margin: 0;
  font-family: "Segoe UI", Arial, sans-serif;
  background: #f5f6f8;
  color: #222;
}
.page {
  max-width: 900px;
  margin: 0 auto;
  padding: 24px;
}
.hero {
  text-align: center;
  padding: 32px 0;
}
.hero .avatar {
  width: 96px;
  height: 96px;
  border-radius: 50%;
  object-fit: cover;
}
.hero h1 {
  margin: 12px 0 4px;
}
.contact {
  color: #666;
}
.contact a {
  color: #2e7d32;
}
section {
  background: #fff;
  border-radius: 8px;
  padding: 16px 24px;
  margin-bottom: 16px;
  box-shadow: 0 1px 3px rgba(0, 0, 0, 0.08);
}
section h2 {
  margin-top: 0;
  font-size: 18px;
  border-bottom: 1px solid #eee;
  padding-bottom: 8px;
}
.address {
  color: #666;
  font-size: 14px;
}`
