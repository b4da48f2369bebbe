package service

import "text/template"

// The emitted widget. Feature text arrives pre-escaped so the script
// can inline it into markup directly. Pages can swap the persistence
// layer by defining window.FeatureBlastStorage before loading the
// script.
var scriptTemplate = template.Must(template.New("embed").Parse(`(function() {
  var FEATURE_BLAST_UID = "{{.UID}}";
  var PRIMARY_COLOR = "{{.Color}}";
  var TRACK_URL = "{{.TrackURL}}";
  var SHOW_BRANDING = {{.ShowBranding}};
  var FEATURES = {{.FeaturesJSON}};

  var storage = window.FeatureBlastStorage || window.localStorage;

  function trackImpression(featureId, type) {
    fetch(TRACK_URL, {
      method: 'POST',
      headers: { 'Content-Type': 'application/json' },
      body: JSON.stringify({ featureId: featureId, uid: FEATURE_BLAST_UID, type: type })
    }).catch(function() {});
  }

  function trackView(featureId) { trackImpression(featureId, 'view'); }
  function trackClick(featureId) { trackImpression(featureId, 'click'); }

  function createPopup(feature) {
    var popup = document.createElement('div');
    popup.id = 'feature-blast-popup';
    popup.innerHTML =
      '<div style="position: fixed; top: 0; left: 0; right: 0; bottom: 0; background: rgba(0,0,0,0.7); z-index: 999999; display: flex; align-items: center; justify-content: center; animation: fbFadeIn 0.3s;">' +
        '<div style="background: white; border-radius: 16px; padding: 32px; max-width: 500px; box-shadow: 0 20px 60px rgba(0,0,0,0.3); animation: fbSlideUp 0.3s;">' +
          '<div style="display: flex; justify-content: space-between; align-items: start; margin-bottom: 16px;">' +
            '<span style="background: ' + PRIMARY_COLOR + '; color: white; padding: 4px 12px; border-radius: 20px; font-size: 12px; font-weight: 600;">' + feature.feature_type + '</span>' +
            '<button id="feature-blast-close" style="background: none; border: none; font-size: 24px; cursor: pointer; color: #666;">&times;</button>' +
          '</div>' +
          '<h2 style="color: #1a1a1a; font-size: 24px; font-weight: bold; margin: 16px 0;">' + feature.title + '</h2>' +
          '<p style="color: #666; line-height: 1.6;">' + feature.description + '</p>' +
          '<button id="feature-blast-cta" style="background: ' + PRIMARY_COLOR + '; color: white; border: none; padding: 12px 24px; border-radius: 8px; font-weight: 600; cursor: pointer; margin-top: 20px; width: 100%;">Got it!</button>' +
        '</div>' +
      '</div>';
    document.body.appendChild(popup);
    document.getElementById('feature-blast-close').addEventListener('click', function() {
      popup.remove();
    });
    document.getElementById('feature-blast-cta').addEventListener('click', function() {
      trackClick(feature.id);
      popup.remove();
    });
    trackView(feature.id);
  }

  function createChangelog() {
    var items = '';
    for (var i = 0; i < FEATURES.length; i++) {
      var f = FEATURES[i];
      var short = f.description.length > 80 ? f.description.substring(0, 80) + '...' : f.description;
      items +=
        '<div data-feature-id="' + f.id + '" class="feature-blast-item" style="padding: 12px; border-bottom: 1px solid #eee; cursor: pointer;">' +
          '<div style="font-size: 12px; color: ' + PRIMARY_COLOR + '; font-weight: 600; margin-bottom: 4px;">' + f.feature_type + '</div>' +
          '<div style="font-weight: 600; color: #1a1a1a; margin-bottom: 4px;">' + f.title + '</div>' +
          '<div style="font-size: 14px; color: #666;">' + short + '</div>' +
        '</div>';
    }

    var branding = '';
    if (SHOW_BRANDING) {
      branding = '<div style="padding: 8px 16px; font-size: 11px; color: #a1a1aa; text-align: center;">Made with Feature Blast</div>';
    }

    var changelog = document.createElement('div');
    changelog.id = 'feature-blast-changelog';
    changelog.innerHTML =
      '<div style="position: fixed; bottom: 20px; right: 20px; background: white; border-radius: 12px; box-shadow: 0 10px 40px rgba(0,0,0,0.1); width: 320px; max-height: 400px; overflow: hidden; z-index: 999998;">' +
        '<div style="background: ' + PRIMARY_COLOR + '; color: white; padding: 16px; font-weight: 600;">✨ What\'s New</div>' +
        '<div style="padding: 16px; max-height: 300px; overflow-y: auto;">' + items + '</div>' +
        branding +
      '</div>';
    document.body.appendChild(changelog);

    var nodes = changelog.getElementsByClassName('feature-blast-item');
    for (var j = 0; j < nodes.length; j++) {
      nodes[j].addEventListener('click', function() {
        trackClick(this.getAttribute('data-feature-id'));
      });
    }
  }

  if (FEATURES.length > 0) {
    var latest = FEATURES[0];
    var lastSeen = null;
    try { lastSeen = storage.getItem('fb_last_seen'); } catch (e) {}
    if (lastSeen !== latest.id) {
      setTimeout(function() {
        createPopup(latest);
        try { storage.setItem('fb_last_seen', latest.id); } catch (e) {}
      }, 2000);
    }
    createChangelog();
  }

  var style = document.createElement('style');
  style.textContent =
    '@keyframes fbFadeIn { from { opacity: 0; } to { opacity: 1; } }' +
    '@keyframes fbSlideUp { from { transform: translateY(20px); opacity: 0; } to { transform: translateY(0); opacity: 1; } }';
  document.head.appendChild(style);
})();
`))
